package main

import (
	"flag"
	"net/http"
	"os"

	"github.com/dominoes-online/server/network"
	"github.com/dominoes-online/server/render"
	"github.com/dominoes-online/server/service"
	"go.uber.org/zap"
)

func main() {
	addr := flag.String("addr", defaultAddr(), "listen address")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	log := logger.Sugar()

	registry := service.NewRegistry(log)
	render.NewConsoleListener(log).Register()
	server := network.NewServer(registry, log)

	log.Infof("dominoes server listening on %s", *addr)
	log.Error(http.ListenAndServe(*addr, server.Routes()))
}

func defaultAddr() string {
	if addr := os.Getenv("DOMINOES_ADDR"); addr != "" {
		return addr
	}
	return ":8080"
}
