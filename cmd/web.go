/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/flamego/csrf"
	"github.com/flamego/flamego"
	"github.com/flamego/session"
	"github.com/flamego/template"
	"github.com/urfave/cli/v3"

	"github.com/humaidq/clinicalc/config"
	"github.com/humaidq/clinicalc/reference"
	"github.com/humaidq/clinicalc/routes"
	"github.com/humaidq/clinicalc/static"
	"github.com/humaidq/clinicalc/templates"
)

// CmdStart runs the web calculators.
var CmdStart = &cli.Command{
	Name:    "start",
	Aliases: []string{"run"},
	Usage:   "Start the web server",
	Flags:   startFlags(),
	Action:  start,
}

func startFlags() []cli.Flag {
	return append([]cli.Flag{
		&cli.StringFlag{
			Name:    "port",
			Value:   "8080",
			Sources: cli.EnvVars("CLINICALC_PORT"),
			Usage:   "the web server port",
		},
		&cli.StringFlag{
			Name:    "env",
			Sources: cli.EnvVars("CLINICALC_ENV"),
			Usage:   "runtime environment (development, production)",
		},
		&cli.StringFlag{
			Name:    "site-title",
			Sources: cli.EnvVars("PUBLIC_SITE_TITLE"),
			Usage:   "title shown in the page header",
		},
		&cli.StringFlag{
			Name:    "csrf-secret",
			Sources: cli.EnvVars("CSRF_SECRET"),
			Usage:   "secret used to sign CSRF tokens",
		},
	}, settingsFlags()...)
}

const shutdownTimeout = 10 * time.Second

// csrfHeader must match the header static/app.js sends with convert requests.
const csrfHeader = "X-CSRF-Token"

// webOptions configure the flamego application.
type webOptions struct {
	Settings   routes.Settings
	Store      reference.Store
	SiteTitle  string
	CSRFSecret string
}

func start(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	csrfSecret := cmd.String("csrf-secret")
	if csrfSecret == "" {
		if cfg.Web.Env == config.EnvProduction {
			return errCSRFSecretRequired
		}

		appLogger.Warn("CSRF_SECRET not set, using an insecure development secret")

		csrfSecret = "clinicalc-development-secret"
	}

	if cfg.Web.Env == config.EnvDevelopment {
		flamego.SetEnv(flamego.EnvTypeDev)
	} else {
		flamego.SetEnv(flamego.EnvTypeProd)
	}

	store, closeStore, err := openReferenceStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	f, err := newWebApp(webOptions{
		Settings: routes.Settings{
			BannerDelay: cfg.Calculators.BannerDelay.Duration,
			Gender:      reference.ParseGender(cfg.Calculators.Gender),
		},
		Store:      store,
		SiteTitle:  cfg.Web.SiteTitle,
		CSRFSecret: csrfSecret,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              net.JoinHostPort("0.0.0.0", cfg.Web.Port),
		Handler:           f,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)

	go func() {
		appLogger.Info("Starting web server", "port", cfg.Web.Port, "env", cfg.Web.Env)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return fmt.Errorf("web server failed: %w", err)
	case <-ctx.Done():
	}

	appLogger.Info("Shutting down web server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down web server: %w", err)
	}

	return nil
}

func newWebApp(opts webOptions) (*flamego.Flame, error) {
	f := flamego.New()
	configureEmptyNotFoundHandler(f)

	fs, err := template.EmbedFS(templates.Templates, ".", []string{".html"})
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	f.Use(flamego.Recovery())
	f.Use(routes.RequestLogger)
	f.Use(session.Sessioner())
	f.Use(csrf.Csrfer(csrf.Options{Secret: opts.CSRFSecret, Header: csrfHeader}))
	f.Use(template.Templater(template.Options{
		FileSystem: fs,
	}))
	f.Use(flamego.Static(flamego.StaticOptions{
		FileSystem: http.FS(static.Static),
	}))
	f.Use(routes.NoCacheHeaders())
	f.Use(routes.CSRFInjector())
	f.Use(routes.FlashInjector())
	f.Use(routes.SiteTitle(opts.SiteTitle))
	f.Use(routes.SettingsInjector(opts.Settings))

	f.MapTo(opts.Store, (*reference.Store)(nil))

	f.Get("/healthz", routes.Healthz)
	f.Get("/", routes.Index)

	f.Get("/bmi", routes.BMIForm)
	f.Post("/bmi", csrf.Validate, routes.CalculateBMI)
	f.Get("/ldl", routes.LDLForm)
	f.Post("/ldl", csrf.Validate, routes.CalculateLDL)

	f.Group("/blood", func() {
		f.Get("/indices", routes.IndicesForm)
		f.Post("/indices", csrf.Validate, routes.CalculateIndices)
		f.Get("/bilirubin", routes.BilirubinForm)
		f.Post("/bilirubin", csrf.Validate, routes.CalculateBilirubin)
		f.Get("/rbc", routes.RBCForm)
		f.Post("/rbc", csrf.Validate, routes.CalculateRBC)
		f.Get("/pcv", routes.PCVConverter)
	})

	f.Get("/lab", routes.LabConverter)
	f.Get("/units", routes.UnitsConverter)
	f.Get("/temperature", routes.TemperatureConverter)

	f.Post("/api/convert/{converter}", csrf.Validate, routes.Convert)

	return f, nil
}

func configureEmptyNotFoundHandler(f *flamego.Flame) {
	f.NotFound(func(c flamego.Context) {
		c.ResponseWriter().WriteHeader(http.StatusNotFound)
	})
}
