package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"

	editormod "github.com/amirali/neveshtar/editor"
	"github.com/amirali/neveshtar/editor/config"
)

const debugLogPath = "./neveshtar.log"

// openLog returns the debug log destination: path when set, the default
// debug file with -debug, and the null device otherwise.
func openLog(path string, debugFlag bool) (io.WriteCloser, error) {
	if path == "" && debugFlag {
		path = debugLogPath
	}
	if path == "" {
		return os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}

func main() {
	configFlag := flag.String("config", "", "path to the config file")
	debugFlag := flag.Bool("debug", false, "flag to enable debug logging")
	versionFlag := flag.Bool("version", false, "print the version and exit")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] [file ...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *versionFlag {
		fmt.Println("neveshtar", editormod.Version)
		return
	}

	configPath := *configFlag
	if configPath == "" {
		if p, err := config.DefaultPath(); err == nil {
			configPath = p
		}
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		fail(err)
	}

	outfile, err := openLog(cfg.LogFile, *debugFlag)
	if err != nil {
		fail(fmt.Errorf("opening log: %w", err))
	}
	defer outfile.Close()
	logger := log.New(outfile, "", log.LstdFlags|log.Lmicroseconds)
	logger.Printf("starting with config %s: %+v", configPath, cfg)

	editor := editormod.New(cfg, os.Stdin, os.Stdout, logger)
	if err := editor.Init(); err != nil {
		fail(err)
	}

	defer func() {
		if r := recover(); r != nil {
			editor.Close()
			editor.ClearScreen()
			logger.Printf("---- panic stack ----\npanic: %#v\n%s\n---------------------", r, string(debug.Stack()))
			fmt.Fprintf(os.Stderr, "panic: %v\n", r)
			os.Exit(2)
		}
	}()

	for _, name := range flag.Args() {
		if err := editor.OpenFile(name); err != nil {
			editor.SetStatusMessage("Could not open file %s: %v", name, err)
		}
	}

	for {
		if err := editor.Render(); err != nil {
			editor.Die(err)
		}
		if err := editor.ProcessKey(); err != nil {
			if errors.Is(err, editormod.ErrQuitEditor) {
				break
			}
			editor.Die(err)
		}
	}
	editor.ClearScreen()
	if err := editor.Close(); err != nil {
		logger.Printf("restoring terminal: %v", err)
	}
}
