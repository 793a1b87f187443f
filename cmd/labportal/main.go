package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/SuchitArtal/virtual-lab/internal/api"
	"github.com/SuchitArtal/virtual-lab/internal/app"
)

func main() {
	cfgFile := flag.String("config", "config.yaml", "Path to config file")
	flag.Parse()
	if *cfgFile != "" {
		viper.SetConfigFile(*cfgFile)
	}

	/* ---------- core ---------- */
	a := &app.App{}
	if err := a.Init(); err != nil {
		logrus.Fatalf("init: %v", err)
	}
	log := a.Logger()

	/* ---------- HTTP layer ---------- */
	router := api.SetupRouter(a)
	a.SetWebRouter(router)

	addr := fmt.Sprintf("%s:%d", a.GetConfig().WebHost, a.GetConfig().WebPort)
	srv := &http.Server{Addr: addr, Handler: router}
	go func() {
		log.WithField("addr", addr).Info("lab access portal listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http: %v", err)
		}
	}()

	/* ---------- graceful shutdown ---------- */
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutdown")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	_ = a.Close()
}
