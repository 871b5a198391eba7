package main

import "flag"

type config struct {
	Width    int
	Height   int
	Title    string
	AssetDir string
}

func parseConfig() config {
	var cfg config
	flag.IntVar(&cfg.Width, "width", 1000, "window width in pixels")
	flag.IntVar(&cfg.Height, "height", 800, "window height in pixels")
	flag.StringVar(&cfg.Title, "title", "deskscene", "window title")
	flag.StringVar(&cfg.AssetDir, "assets", "assets/textures", "directory holding the scene textures")
	flag.Parse()
	return cfg
}
