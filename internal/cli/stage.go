// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alvinbaena/pwd-meter/internal/util"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var ErrSourceNotFound = errors.New("zxcvbn source not found")

var (
	stageCmd = &cobra.Command{
		Use:   "stage",
		Short: "Copy the zxcvbn.js bundle into the web root served by the serve command",
		RunE: func(cmd *cobra.Command, args []string) error {
			return stageCommand(cmd.Context())
		},
	}
)

func init() {
	stageCmd.Flags().StringVarP(&source, "from", "f", filepath.Join("node_modules", "zxcvbn", "dist", "zxcvbn.js"),
		"Path or http(s) URL of the zxcvbn.js bundle")
	stageCmd.Flags().StringVarP(&outFile, "out-file", "o", filepath.Join("web", "zxcvbn.js"), "Output file path. Can be absolute or relative.")
	stageCmd.Flags().BoolVar(&overwrite, "overwrite", true, "Overwrite any existing files while writing the results.")

	rootCmd.AddCommand(stageCmd)
}

func stageCommand(ctx context.Context) error {
	util.ApplyCliSettings(verbose, profile, pprofPort)

	abs, err := filepath.Abs(outFile)
	if err != nil {
		return fmt.Errorf("could not get absolute path of file: %w", err)
	}

	if err = stageFile(ctx, source, abs, overwrite); err != nil {
		return err
	}

	log.Info().Msgf("copied zxcvbn.js to %s", abs)
	return nil
}

// stageFile copies src, a file path or an http(s) URL, to dest creating its directory.
func stageFile(ctx context.Context, src string, dest string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(dest); err == nil {
			return fmt.Errorf("file %s exists and overwrite flag is not set", dest)
		}
	}

	in, err := openSource(ctx, src)
	if err != nil {
		return err
	}

	defer func(in io.ReadCloser) {
		if err := in.Close(); err != nil {
			log.Warn().Err(err).Msgf("error closing %s", src)
		}
	}(in)

	if err = os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}

	// Write next to the destination first, the server may be reading the old file.
	tmp, err := os.CreateTemp(filepath.Dir(dest), ".zxcvbn-*.js")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err = io.Copy(tmp, in); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to copy zxcvbn.js: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), dest)
}

func openSource(ctx context.Context, src string) (io.ReadCloser, error) {
	if !strings.HasPrefix(src, "http://") && !strings.HasPrefix(src, "https://") {
		f, err := os.Open(src)
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w at: %s", ErrSourceNotFound, src)
		}
		if err != nil {
			return nil, err
		}

		return f, nil
	}

	if ctx == nil {
		ctx = context.Background()
	}

	client := retryablehttp.NewClient()
	client.Logger = nil
	client.RetryMax = 3
	client.HTTPClient.Timeout = 30 * time.Second

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "pwd-meter-stage/1.0")

	res, err := client.Do(req)
	if err != nil {
		return nil, err
	}

	if res.StatusCode == http.StatusNotFound {
		_ = res.Body.Close()
		return nil, fmt.Errorf("%w at: %s", ErrSourceNotFound, src)
	}
	if res.StatusCode >= 400 {
		_ = res.Body.Close()
		return nil, fmt.Errorf("request [%s] failed with status [%d] %s", src, res.StatusCode, res.Status)
	}

	return res.Body, nil
}
