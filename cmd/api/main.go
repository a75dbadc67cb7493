package main

import (
	"log"

	"github.com/scott198989/ParameterPath-Optimizer/internal/bootstrap"
	"github.com/scott198989/ParameterPath-Optimizer/internal/config"
	"github.com/scott198989/ParameterPath-Optimizer/internal/server"
)

func main() {
	cfg := config.Load()
	app := bootstrap.Build(cfg)
	r := server.NewEngine(cfg, app)

	addr := server.Addr(cfg.Port)
	log.Printf("Starting film advisor API on %s", addr)

	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
