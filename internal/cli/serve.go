// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alvinbaena/pwd-meter/internal/api"
	"github.com/alvinbaena/pwd-meter/internal/config"
	"github.com/alvinbaena/pwd-meter/internal/util"
	"github.com/alvinbaena/pwd-meter/internal/web"
	"github.com/alvinbaena/pwd-meter/pkg/strength"
	"github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
	"github.com/likexian/selfca"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const passwordEndpoint = "/v1/strength/password"

var (
	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve the password strength API and analysis page",
		Long: "Serve the password strength API and analysis page. Every flag can also be set with an " +
			"environment variable (PORT, SCORER, ESTIMATOR, SELF_TLS, TLS_CERT, TLS_KEY, WEB_ROOT, PAGE_FILE, CORS_ORIGINS) or a .env file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serveCommand(cmd)
		},
	}
)

func init() {
	serveCmd.Flags().BoolVar(&selfTLS, "self-tls", false,
		"If the server should use a self-signed certificate when starting. The certificate is renewed on each server restart")
	serveCmd.Flags().StringVar(&tlsCert, "tls-cert", "", "Path to the PEM encoded TLS certificate to be used by the server")
	serveCmd.Flags().StringVar(&tlsKey, "tls-key", "", "Path to the PEM encoded TLS private key to be used by the server")
	serveCmd.Flags().Uint16VarP(&port, "port", "p", 3100, "Port to be used by the server")
	serveCmd.Flags().StringVar(&webRoot, "web-root", "./web", "Directory served on /static, where the stage command puts zxcvbn.js")
	serveCmd.Flags().StringVar(&pageFile, "page", "", "HTML template to serve instead of the built-in analysis page")
	serveCmd.Flags().StringSliceVar(&corsOrigins, "cors-origin", nil, "Origins allowed to call the API from a browser")

	rootCmd.AddCommand(serveCmd)
}

func serveCommand(cmd *cobra.Command) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}

	util.ApplyCliSettings(verbose || cfg.Debug, profile, pprofPort)
	if !verbose && !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	handler, err := newRouter(cfg)
	if err != nil {
		return fmt.Errorf("error initializing API: %w", err)
	}

	tlsConfig, err := serverTLS(cfg)
	if err != nil {
		return err
	}

	srvAddr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:              srvAddr,
		Handler:           handler,
		TLSConfig:         tlsConfig,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Msgf("starting TLS Server on address: %s", srvAddr)
		// certificates are either in TLSConfig or in the cert/key files.
		if err := srv.ListenAndServeTLS(cfg.TLSCert, cfg.TLSKey); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("error starting server")
		}
	}()

	gracefulShutdown(srv)
	return nil
}

func newRouter(cfg config.Config) (http.Handler, error) {
	evaluator, err := newEvaluator(cfg.Scorer, cfg.Estimator)
	if err != nil {
		return nil, err
	}
	log.Info().Msgf("using the %s scorer", evaluator.Scorer().Name())

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(logger.SetLogger(logger.WithLogger(func(c *gin.Context, z zerolog.Logger) zerolog.Logger {
		return zerolog.New(gin.DefaultWriter).With().Timestamp().Logger()
	})))

	v1 := router.Group("/v1")
	api.RegisterStrengthApi(v1.Group("/strength"), evaluator)

	page, err := web.NewPage(cfg.PageFile, pageOptions(evaluator.Scorer()))
	if err != nil {
		return nil, err
	}
	if err = web.Register(router, page, cfg.WebRoot); err != nil {
		return nil, err
	}

	if len(cfg.CorsOrigins) == 0 {
		return router, nil
	}

	return cors.New(cors.Options{
		AllowedOrigins: cfg.CorsOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(router), nil
}

// pageOptions lets the browser score with the staged zxcvbn bundle when the server scores with
// zxcvbn too, so both give the same results.
func pageOptions(scorer strength.Scorer) web.Options {
	opts := web.Options{Endpoint: passwordEndpoint}
	if m, ok := scorer.(*strength.ModelScorer); ok && m.Available() {
		table := scorer.Severities()
		opts.Bundle = web.BundlePath
		opts.MaxLocalRunes = strength.MaxEstimateRunes
		opts.Severities = table[:]
	}

	return opts
}

// serverTLS returns the TLS config for a self-signed certificate, or nil when the server uses
// the certificate files.
func serverTLS(cfg config.Config) (*tls.Config, error) {
	if cfg.TLSCert != "" && cfg.TLSKey != "" {
		return nil, nil
	}

	if !cfg.SelfTLS {
		return nil, fmt.Errorf("server requires TLS configuration to start. " +
			"Please use either the --self-tls flag or set a certificate with the --tls-cert and --tls-key flags")
	}

	log.Warn().Msgf("using auto self-signed certificate for TLS. This is not recommended for production. Please consider using your own certificates.")
	caConfig := selfca.Certificate{
		IsCA:      true,
		KeySize:   2048,
		NotBefore: time.Now(),
		// 30 day self-signed cert.
		NotAfter: time.Now().Add(time.Duration(30*24) * time.Hour),
	}

	// generating the certificate
	certificate, key, err := selfca.GenerateCertificate(caConfig)
	if err != nil {
		return nil, fmt.Errorf("error generating auto self-signed certificate: %w", err)
	}

	pair, err := tls.X509KeyPair(
		pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: certificate}),
		pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)}),
	)
	if err != nil {
		return nil, fmt.Errorf("error using auto self-signed certificate: %w", err)
	}

	return &tls.Config{Certificates: []tls.Certificate{pair}}, nil
}

func gracefulShutdown(srv *http.Server) {
	// Wait for interrupt signal to gracefully shut down the server with
	// a timeout.
	quit := make(chan os.Signal, 1)
	// kill (no param) default send syscall.SIGTERM
	// kill -2 is syscall.SIGINT
	// kill -9 is syscall. SIGKILL but can't be a catch, so don't need to add it
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Warn().Err(err).Msg("server Shutdown.")
	}
	log.Info().Msg("server exiting...")
}
