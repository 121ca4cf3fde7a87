package main

import (
	"fmt"
	"log"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/melissaiman/portfolio/internal/content"
)

const (
	defaultPort   = "8080"
	defaultOutDir = "dist"
	prodBasePath  = "/melissa-portfolio"
)

var (
	servePort     string
	serveBasePath string

	exportOut      string
	exportBasePath string

	previewReduced bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "portfolio",
		Short:        "Personal portfolio site",
		SilenceUsage: true,
		RunE:         runServeCmd,
	}
	bindServeFlags(rootCmd)

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the portfolio over HTTP",
		RunE:  runServeCmd,
	}
	bindServeFlags(serveCmd)

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Write the portfolio as a static site",
		RunE:  runExportCmd,
	}
	exportCmd.Flags().StringVar(&exportOut, "out", defaultOutDir, "output directory")
	exportCmd.Flags().StringVar(&exportBasePath, "base-path", envOr("BASE_PATH", prodBasePath), "path prefix the site is published under")

	previewCmd := &cobra.Command{
		Use:   "preview",
		Short: "Preview the page and its cursor effects in the terminal",
		RunE:  runPreviewCmd,
	}
	previewCmd.Flags().BoolVar(&previewReduced, "reduced", false, "disable the particle trail")

	rootCmd.AddCommand(serveCmd, exportCmd, previewCmd)
	return rootCmd
}

func bindServeFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&servePort, "port", envOr("PORT", defaultPort), "listen port")
	cmd.Flags().StringVar(&serveBasePath, "base-path", os.Getenv("BASE_PATH"), "path prefix to mount the site under")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func runServeCmd(_ *cobra.Command, _ []string) error {
	site, err := content.Load()
	if err != nil {
		return err
	}
	r, err := newRouter(site, serveBasePath)
	if err != nil {
		return err
	}
	if gin.Mode() == gin.DebugMode {
		log.Printf("Serving %s on :%s%s", site.Profile.FullName(), servePort, serveBasePath)
	}
	if err := r.Run(":" + servePort); err != nil {
		return fmt.Errorf("server stopped: %w", err)
	}
	return nil
}

func runExportCmd(_ *cobra.Command, _ []string) error {
	site, err := content.Load()
	if err != nil {
		return err
	}
	gin.SetMode(gin.ReleaseMode)
	n, err := exportSite(site, exportBasePath, exportOut)
	if err != nil {
		return err
	}
	log.Printf("Exported %d files to %s (base path %q)", n, exportOut, exportBasePath)
	return nil
}
