package main

import (
	"flag"

	"github.com/golang/glog"

	"github.com/df07/go-blinn-raytracer/web/server"
)

func main() {
	port := flag.Int("port", 8080, "Port for the render server")
	flag.Parse()
	defer glog.Flush()

	srv := server.New(*port)
	if err := srv.Start(); err != nil {
		glog.Exitf("Render server failed: %v", err)
	}
}
