package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"fusus-cli/internal/client"
	"fusus-cli/internal/schedule"
	"fusus-cli/internal/token"
	"fusus-cli/pkg/models"
)

var (
	aiCoreID    string
	aiDetection string
	aiLabels    string
	aiSchedule  string
	aiCount     int
)

// aiWriteDelay is the self-imposed rate limit between camera PATCHes.
const aiWriteDelay = time.Second

var aiCmd = &cobra.Command{
	Use:   "ai",
	Short: "Check and enable AI detection on cores",
}

var aiCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Show a core's AI capability and camera AI status",
	Run: func(cmd *cobra.Command, args []string) {
		api := apiClient(token.ProfilePrimary)

		isAI, detections, err := api.CoreAI(aiCoreID)
		if err != nil {
			fmt.Printf("Error checking core %s: %v\n", aiCoreID, err)
			os.Exit(1)
		}

		fmt.Printf("Core %s AI-capable: %v\n", aiCoreID, isAI)
		if len(detections) > 0 {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "NAME\tTYPE\tLABELS")
			for _, det := range detections {
				fmt.Fprintf(w, "%s\t%s\t%s\n", det.Name, det.Type, strings.Join(det.AllowedLabels, ","))
			}
			w.Flush()
		}

		cameras, err := api.CoreCameras(aiCoreID)
		if err != nil {
			fmt.Printf("Error listing cameras: %v\n", err)
			os.Exit(1)
		}
		enabled := lo.CountBy(cameras, func(c models.CoreCamera) bool { return c.IsAiEnabled })
		fmt.Printf("Cameras: %d total, %d with AI, %d without\n", len(cameras), enabled, len(cameras)-enabled)
	},
}

var aiEnableCmd = &cobra.Command{
	Use:   "enable",
	Short: "Enable an AI detection type on a core's cameras",
	Long: `Verifies the core is AI-capable, selects the cameras that do not
have AI yet, and applies the detection configuration to each one. The PATCH
replaces the camera's whole AI config; failures are reported per camera and
do not stop the batch.`,
	Example: `  fusus-cli ai enable --core 7c8334403553 --detection "Person Detection" --schedule office-hours
  fusus-cli ai enable --core 7c8334403553 --detection Vehicle --labels car,truck --count 4`,
	Run: func(cmd *cobra.Command, args []string) {
		api := apiClient(token.ProfilePrimary)

		isAI, detections, err := api.CoreAI(aiCoreID)
		if err != nil {
			fmt.Printf("Error checking core %s: %v\n", aiCoreID, err)
			os.Exit(1)
		}
		if !isAI {
			fmt.Printf("Core %s is not AI-capable.\n", aiCoreID)
			os.Exit(1)
		}

		det, found := pickDetection(detections, aiDetection)
		if !found {
			names := lo.Map(detections, func(d models.DetectionType, _ int) string { return d.Name })
			fmt.Printf("Unknown detection type %q. Core supports: %s\n", aiDetection, strings.Join(names, ", "))
			os.Exit(1)
		}

		labels := splitCSVFlag(aiLabels)
		if bad := invalidLabels(det, labels); len(bad) > 0 {
			fmt.Printf("Labels not allowed for %s: %s (allowed: %s)\n",
				det.Name, strings.Join(bad, ", "), strings.Join(det.AllowedLabels, ", "))
			os.Exit(1)
		}

		cameras, err := api.CoreCameras(aiCoreID)
		if err != nil {
			fmt.Printf("Error listing cameras: %v\n", err)
			os.Exit(1)
		}
		targets := lo.Filter(cameras, func(c models.CoreCamera, _ int) bool { return !c.IsAiEnabled })
		if len(targets) == 0 {
			fmt.Println("Every camera on this core already has AI enabled.")
			return
		}
		if aiCount > 0 && aiCount < len(targets) {
			targets = targets[:aiCount]
		}

		settings := client.DefaultAISettings(det, labels, schedule.Resolve(aiSchedule))

		var enabled []string
		for _, cam := range targets {
			if err := api.EnableAI(cam.ID, settings); err != nil {
				fmt.Printf("Failed to enable AI on %s: %v\n", cam.Name, err)
			} else {
				enabled = append(enabled, cam.Name)
				fmt.Printf("AI enabled on %s\n", cam.Name)
			}
			time.Sleep(aiWriteDelay)
		}

		if len(enabled) == 0 {
			fmt.Println("No cameras were enabled due to errors.")
			os.Exit(1)
		}
		fmt.Printf("AI enabled on %d of %d cameras.\n", len(enabled), len(targets))
	},
}

func pickDetection(detections []models.DetectionType, name string) (models.DetectionType, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	for _, det := range detections {
		if strings.ToLower(det.Name) == needle || strings.ToLower(det.Type) == needle {
			return det, true
		}
	}
	// Fall back to substring so "--detection person" finds "Person Detection".
	for _, det := range detections {
		if strings.Contains(strings.ToLower(det.Name), needle) {
			return det, true
		}
	}
	return models.DetectionType{}, false
}

func invalidLabels(det models.DetectionType, labels []string) []string {
	return lo.Filter(labels, func(l string, _ int) bool {
		return !lo.Contains(det.AllowedLabels, l)
	})
}

func splitCSVFlag(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func init() {
	rootCmd.AddCommand(aiCmd)
	aiCmd.AddCommand(aiCheckCmd)
	aiCmd.AddCommand(aiEnableCmd)

	aiCmd.PersistentFlags().StringVar(&aiCoreID, "core", "", "Core serial to check/configure")
	_ = aiCmd.MarkPersistentFlagRequired("core")

	aiEnableCmd.Flags().StringVar(&aiDetection, "detection", "", "Detection type name (as reported by 'ai check')")
	aiEnableCmd.Flags().StringVar(&aiLabels, "labels", "", "Comma-separated label subset (default none)")
	aiEnableCmd.Flags().StringVar(&aiSchedule, "schedule", schedule.PresetEntireDay, "Schedule preset (entire-day, office-hours, after-hours) or comma-separated cron list")
	aiEnableCmd.Flags().IntVar(&aiCount, "count", 0, "Max cameras to enable (0 = all without AI)")
	_ = aiEnableCmd.MarkFlagRequired("detection")
}
