// Command ninegrid-oracle writes or verifies a CSV oracle of nine-dot edge
// selections and their hashes.
//
//	ninegrid-oracle -k 3 -o oracle.csv
//	ninegrid-oracle -verify -o oracle.csv
//	ninegrid-oracle -config oracle.yaml
package main

import (
	"flag"
	"os"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/ninegrid/gridcodec"
	"github.com/katalvlaran/ninegrid/oracle"
)

func main() {
	fset := flag.NewFlagSet("", flag.ContinueOnError)
	klog.InitFlags(fset)
	fset.Set("logtostderr", "true")
	fset.Set("v", "2")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})

	configPath := flag.String("config", "", "YAML config file")
	output := flag.String("o", "", "oracle file path")
	maxSize := flag.Int("k", -1, "largest selection size to write")
	noHeader := flag.Bool("no-header", false, "omit the edges,hash header row")
	verify := flag.Bool("verify", false, "verify the oracle file instead of writing it")
	flag.Parse()

	cfg := oracle.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = oracle.LoadConfig(*configPath); err != nil {
			klog.Errorf("%v", err)
			klog.Flush()
			os.Exit(2)
		}
	}
	// flags override the config file
	if *output != "" {
		cfg.Output = *output
	}
	if *maxSize >= 0 {
		cfg.MaxSubsetSize = *maxSize
	}
	if *noHeader {
		cfg.Header = false
	}
	if *verify {
		cfg.Verify = true
	}

	if err := run(cfg); err != nil {
		klog.Errorf("%v", err)
		klog.Flush()
		os.Exit(1)
	}
	klog.Flush()
}

func run(cfg oracle.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	c := gridcodec.New()

	if cfg.Verify {
		f, err := os.Open(cfg.Output)
		if err != nil {
			return errors.Wrap(err, "opening oracle")
		}
		defer f.Close()

		rep, err := oracle.Verify(f, c, cfg)
		for _, m := range rep.Mismatches {
			klog.Warningf("%s", m)
		}
		if err != nil {
			return errors.Wrapf(err, "verifying %s", cfg.Output)
		}
		klog.Infof("%s: %d rows ok", cfg.Output, rep.Rows)
		return nil
	}

	f, err := os.Create(cfg.Output)
	if err != nil {
		return errors.Wrap(err, "creating oracle")
	}
	n, err := oracle.Generate(f, c, cfg)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = errors.Wrap(cerr, "closing oracle")
	}
	if err != nil {
		return err
	}
	klog.Infof("%s: wrote %d rows (selections up to %d edges)", cfg.Output, n, cfg.MaxSubsetSize)
	return nil
}
