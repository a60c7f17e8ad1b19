package cmd

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"linkmind/internal/apihandlers"
)

var (
	serveAddr string
	servePort string
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the engine as an HTTP API server",
	Long: `Starts an HTTP server exposing classification, keyword extraction,
duplicate detection and feature orchestration to the UI.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		router := gin.Default() // Includes logger and recovery middleware

		apiHandler := apihandlers.NewAPIHandler(appInstance)

		v1 := router.Group("/api/v1")
		{
			v1.POST("/classify", apiHandler.ClassifyHandler)
			v1.POST("/classify/batch", apiHandler.ClassifyBatchHandler)
			v1.POST("/keywords", apiHandler.KeywordsHandler)
			v1.POST("/duplicates", apiHandler.DuplicatesHandler)

			v1.POST("/features/:id/run", apiHandler.RunFeatureHandler)
			v1.GET("/tools", apiHandler.ToolStatusHandler)
		}

		router.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		listenAddr := fmt.Sprintf("%s:%s", serveAddr, servePort)
		log.Printf("Starting linkmind API server on http://%s", listenAddr)

		if err := router.Run(listenAddr); err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "127.0.0.1", "Listen address")
	serveCmd.Flags().StringVar(&servePort, "port", "8080", "Listen port")
}
