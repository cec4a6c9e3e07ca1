package main

import (
	"fmt"
	"os"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/uno/config"
	"github.com/ratel-online/uno/network"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
	config.Set(cfg)

	servers := []network.Network{
		network.NewTcpServer(cfg.TCPAddr),
		network.NewWebsocketServer(cfg.WSAddr),
	}
	errs := make(chan error, len(servers))
	for _, server := range servers {
		server := server
		async.Async(func() {
			errs <- server.Serve()
		})
	}
	log.Error(<-errs)
}
