package service

// skippedDirs are never descended into when discovering manifests recursively.
var skippedDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"target":       true,
	".venv":        true,
	"venv":         true,
}
