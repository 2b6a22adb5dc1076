package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/kardianos/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"fusus-cli/internal/client"
	"fusus-cli/internal/health"
)

var (
	expPort       string
	expProfile    string
	serviceAction string // "install", "uninstall", "start", "stop"
)

// --- SERVICE WRAPPER ---

// program implements the kardianos/service interface
type program struct {
	exit   chan struct{}
	server *http.Server
	api    *client.Client
}

func (p *program) Start(s service.Service) error {
	// Start should not block. Do the actual work async.
	p.exit = make(chan struct{})
	go p.run()
	return nil
}

func (p *program) run() {
	registry := prometheus.NewRegistry()
	collector := &FususCollector{
		Client:  p.api,
		Retries: scrapeRetries,
		Backoff: scrapeBackoff,
	}
	registry.MustRegister(collector)

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{
		ErrorLog: log.Default(),
	})

	mux := http.NewServeMux()
	mux.Handle("/metrics", handler)

	addr := fmt.Sprintf(":%s", expPort)
	p.server = &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	log.Printf("Fusus Exporter listening on %s", addr)

	if err := p.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Printf("HTTP Server error: %v", err)
	}
}

func (p *program) Stop(s service.Service) error {
	// Stop should not block. Signal the app to stop.
	log.Println("Stopping service...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if p.server != nil {
		if err := p.server.Shutdown(ctx); err != nil {
			log.Printf("Server forced to shutdown: %v", err)
		}
	}
	close(p.exit)
	return nil
}

// --- COLLECTOR LOGIC ---

// Scrape fetches are bounded, unlike the CLI exports: a vendor outage must
// fail the scrape, not block it while further scrapes pile up behind the
// collector mutex.
const (
	scrapeRetries = 2
	scrapeBackoff = 2 * time.Second
)

type FususCollector struct {
	Client  *client.Client
	Retries int
	Backoff time.Duration
	Mutex   sync.Mutex
}

var (
	upDesc = prometheus.NewDesc(
		"fusus_up", "Was the last scrape successful.", nil, nil,
	)
	scrapeDurationDesc = prometheus.NewDesc(
		"fusus_scrape_duration_seconds", "Time taken to scrape API.", nil, nil,
	)
	cameraUpDesc = prometheus.NewDesc(
		"fusus_camera_up", "Camera connection status.", []string{"id", "name", "ip", "location"}, nil,
	)
	cameraCountDesc = prometheus.NewDesc(
		"fusus_cameras_total", "Total shared cameras grouped by status.", []string{"status"}, nil,
	)
	coreCountDesc = prometheus.NewDesc(
		"fusus_cores_total", "Total cores grouped by status.", []string{"status"}, nil,
	)
)

func (c *FususCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- upDesc
	ch <- scrapeDurationDesc
	ch <- cameraUpDesc
	ch <- cameraCountDesc
	ch <- coreCountDesc
}

func (c *FususCollector) Collect(ch chan<- prometheus.Metric) {
	c.Mutex.Lock()
	defer c.Mutex.Unlock()
	start := time.Now()
	success := 1.0

	if cams, err := c.Client.FetchSharedCamerasBounded(c.Retries, c.Backoff); err == nil {
		statusCounts := make(map[string]float64)
		for _, cam := range cams {
			isUp := 0.0
			if health.FususState(cam.Status) == health.StateOnline {
				isUp = 1.0
			}
			ip := cam.IPAddress
			if ip == "" {
				ip = "unknown"
			}

			ch <- prometheus.MustNewConstMetric(cameraUpDesc, prometheus.GaugeValue, isUp,
				fmt.Sprintf("%d", cam.ID), cam.Name, ip, cam.LocationName())

			statusCounts[orUnknown(cam.Status)]++
		}
		for status, cnt := range statusCounts {
			ch <- prometheus.MustNewConstMetric(cameraCountDesc, prometheus.GaugeValue, cnt, status)
		}
	} else {
		success = 0.0
		log.Printf("Error scraping cameras: %v", err)
	}

	if apps, err := c.Client.FetchAppliancesBounded(c.Retries, c.Backoff); err == nil {
		statusCounts := make(map[string]float64)
		for _, app := range apps {
			statusCounts[orUnknown(app.Status)]++
		}
		for status, cnt := range statusCounts {
			ch <- prometheus.MustNewConstMetric(coreCountDesc, prometheus.GaugeValue, cnt, status)
		}
	} else {
		success = 0.0
		log.Printf("Error scraping cores: %v", err)
	}

	ch <- prometheus.MustNewConstMetric(upDesc, prometheus.GaugeValue, success)
	ch <- prometheus.MustNewConstMetric(scrapeDurationDesc, prometheus.GaugeValue, time.Since(start).Seconds())
}

func orUnknown(status string) string {
	if status == "" {
		return "unknown"
	}
	return status
}

// --- COMMAND ---

var exporterCmd = &cobra.Command{
	Use:   "exporter",
	Short: "Start Prometheus Exporter service",
	Long: `Starts a long-running HTTP server that exposes camera and core fleet
metrics. Can be installed as a system service. The stored token for the
chosen profile is loaded and refreshed the same way the other commands do
it.`,
	Run: func(cmd *cobra.Command, args []string) {
		profile := parseProfileFlag(expProfile)

		svcConfig := &service.Config{
			Name:        "fusus-exporter",
			DisplayName: "Fusus Prometheus Exporter",
			Description: "Exposes Fusus camera and core metrics to Prometheus",
			// Arguments passed to the binary when run as a service
			Arguments: []string{
				"exporter",
				"--port", expPort,
				"--profile", expProfile,
			},
		}

		prg := &program{
			api: apiClient(profile),
		}

		s, err := service.New(prg, svcConfig)
		if err != nil {
			log.Fatal(err)
		}

		if serviceAction != "" {
			err = service.Control(s, serviceAction)
			if err != nil {
				log.Fatalf("Failed to %s service: %v", serviceAction, err)
			}
			fmt.Printf("Service action '%s' completed successfully.\n", serviceAction)
			return
		}

		// Run blocking: either under the service manager or interactively.
		logger, err := s.Logger(nil)
		if err != nil {
			log.Fatal(err)
		}
		if err = s.Run(); err != nil {
			logger.Error(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(exporterCmd)
	exporterCmd.Flags().StringVar(&expPort, "port", "9790", "Port to listen on")
	exporterCmd.Flags().StringVar(&expProfile, "profile", "primary", "Token profile to scrape with")
	exporterCmd.Flags().StringVar(&serviceAction, "service", "", "Service action: install, uninstall, start, stop")
}
