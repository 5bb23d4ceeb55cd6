package main

import (
	"context"
	"fmt"

	"chineseparse/annotate"
	"chineseparse/config"
	"chineseparse/dict"
	"chineseparse/extract"
	"chineseparse/logger"
	"chineseparse/reading"
	"chineseparse/resolve"
	"chineseparse/segment"
)

// sample chapter to make running `go run .` simple
const sampleXHTML = `<?xml version="1.0" encoding="utf-8"?>
<html xmlns="http://www.w3.org/1999/xhtml" xml:lang="zh-CN">
<head><title>示例</title></head>
<body>
<h1>我长大了</h1>
<p>他穿着长袍，在银行门口等我。</p>
<p>音乐让人快乐，重要的事要重新想一想。</p>
</body>
</html>`

func main() {
	cfg, err := config.Load("config.yml")
	if err != nil {
		fmt.Println("failed to load config:", err)
		return
	}
	logger.Init(logger.ParseLevel(cfg.LogLevel))

	// load the polyphonic dictionary once at startup
	d, err := dict.Load()
	if err != nil {
		fmt.Println("failed to load polyphonic dictionary:", err)
		return
	}
	logger.Info("polyphonic dictionary loaded", "phrases", len(d.AllPhrases()))

	seg := segment.New(d.AllPhrases()...)
	drv := annotate.NewDriver(d, seg, reading.New(),
		resolve.WithWindowRadius(cfg.WindowRadius))

	// initialize the dump directory (clears existing .json files)
	if err := logger.InitLogs(cfg.LogDir); err != nil {
		fmt.Println("failed to init logs:", err)
		return
	}

	// per-unit annotations, for inspection
	units := []string{"我长大了", "他穿着长袍，在银行门口等我。", "音乐让人快乐。"}
	anns, err := drv.AnnotateUnits(context.Background(), units, cfg.Workers)
	if err != nil {
		fmt.Println("annotate error:", err)
		return
	}
	for i, unit := range units {
		fmt.Printf("%s\n", unit)
		for _, a := range anns[i] {
			fmt.Printf("  %s -> %s (%s)\n", a.Char, a.Reading, a.Provenance)
		}
		if err := logger.LogJSON(cfg.LogDir, fmt.Sprintf("unit_%d", i), anns[i]); err != nil {
			fmt.Println("failed to write annotation log:", err)
		}
	}

	// whole-document annotation with ruby markup
	out, err := extract.AnnotateContent(sampleXHTML, drv)
	if err != nil {
		fmt.Println("document annotation error:", err)
		return
	}
	fmt.Println(out)
}
