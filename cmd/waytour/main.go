package main

import (
	"encoding/json"
	"fmt"
	"image/png"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/iver-m/waytour/internal/choreo"
	"github.com/iver-m/waytour/internal/config"
	"github.com/iver-m/waytour/internal/content"
	"github.com/iver-m/waytour/internal/document"
	"github.com/iver-m/waytour/internal/geom"
	"github.com/iver-m/waytour/internal/gui"
	"github.com/iver-m/waytour/internal/markup"
	"github.com/iver-m/waytour/internal/panel"
	"github.com/iver-m/waytour/internal/tui"
)

var (
	configFile string
	contentDir string
	durationMs float64
	verbose    bool

	// path command
	fromIndex int
	toIndex   int
	steps     int

	// render command
	panelID string
	outFile string
)

var (
	okStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("82"))
	failStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "waytour",
		Short: "interactive 3d tour player",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(cmd, args)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&contentDir, "content", config.DefaultContentDir, "tour content directory")
	rootCmd.PersistentFlags().Float64Var(&durationMs, "duration", config.DefaultDurationMs, "transition duration in ms")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable parser diagnostics")

	guiCmd := &cobra.Command{
		Use:   "gui [dir]",
		Short: "play the tour in a window",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runGUI,
	}

	previewCmd := &cobra.Command{
		Use:   "preview [dir]",
		Short: "browse the tour content in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runPreview,
	}

	validateCmd := &cobra.Command{
		Use:   "validate [dir]",
		Short: "check every tour document",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runValidate,
	}

	listCmd := &cobra.Command{
		Use:   "list [dir]",
		Short: "list waypoints in tour order",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runList,
	}

	pathCmd := &cobra.Command{
		Use:   "path [dir]",
		Short: "plot the camera path of one transition",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runPath,
	}
	pathCmd.Flags().IntVar(&fromIndex, "from", 0, "start waypoint index")
	pathCmd.Flags().IntVar(&toIndex, "to", 1, "target waypoint index")
	pathCmd.Flags().IntVar(&steps, "steps", 60, "samples across the transition")

	exportCmd := &cobra.Command{
		Use:   "export [dir]",
		Short: "export the built tour model as json",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runExport,
	}

	renderCmd := &cobra.Command{
		Use:   "render [dir]",
		Short: "rasterize one panel to a png file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runRender,
	}
	renderCmd.Flags().StringVar(&panelID, "panel", "", "panel id to render (required)")
	renderCmd.Flags().StringVar(&outFile, "out", "panel.png", "output png path")
	renderCmd.MarkFlagRequired("panel")

	rootCmd.AddCommand(guiCmd, previewCmd, validateCmd, listCmd, pathCmd, exportCmd, renderCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig merges defaults, the optional config file, and CLI flags.
// Flags win over the file, the file wins over defaults.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("content") {
		cfg.ContentDir = contentDir
	}
	if cmd.Flags().Changed("duration") {
		cfg.DurationMs = durationMs
	}
	if len(args) > 0 {
		cfg.ContentDir = args[0]
	}

	if verbose {
		document.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	}

	return cfg, nil
}

func loadModel(cmd *cobra.Command, args []string) (*config.Config, *content.Model, error) {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return nil, nil, err
	}
	model, err := content.LoadDocuments(os.DirFS(cfg.ContentDir), ".", nil)
	if err != nil {
		return nil, nil, err
	}
	return cfg, model, nil
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	return gui.Run(cfg)
}

func runPreview(cmd *cobra.Command, args []string) error {
	_, model, err := loadModel(cmd, args)
	if err != nil {
		return err
	}
	return tui.Run(model)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	model, err := content.LoadDocuments(os.DirFS(cfg.ContentDir), ".", nil)
	if err != nil {
		fmt.Println(failStyle.Render("FAIL"), err)
		return err
	}

	fmt.Println(okStyle.Render("OK"),
		fmt.Sprintf("%d waypoints, %d panels", len(model.Waypoints), len(model.Panels)))
	fmt.Println(dimStyle.Render("content dir: " + cfg.ContentDir))
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	_, model, err := loadModel(cmd, args)
	if err != nil {
		return err
	}

	panels := make(map[string]content.Panel, len(model.Panels))
	for _, p := range model.Panels {
		panels[p.ID] = p
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tID\tTITLE\tPOSITION\tPANEL\tANCHOR")
	for i, wp := range model.Waypoints {
		hasPanel := "-"
		anchor := "-"
		if p, ok := panels[wp.ID]; ok {
			hasPanel = "yes"
			if p.AnchorID != "" {
				anchor = p.AnchorID
			}
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t[%.4g %.4g %.4g]\t%s\t%s\n",
			i+1, wp.ID, wp.Title, wp.Position.X, wp.Position.Y, wp.Position.Z, hasPanel, anchor)
	}
	return w.Flush()
}

// headlessCamera lets the path command drive the real choreographer without
// a window.
type headlessCamera struct {
	pos, look geom.Vec3
}

func (c *headlessCamera) Pose() (geom.Vec3, geom.Vec3) { return c.pos, c.look }
func (c *headlessCamera) SetPose(pos, look geom.Vec3) { c.pos, c.look = pos, look }

func runPath(cmd *cobra.Command, args []string) error {
	cfg, model, err := loadModel(cmd, args)
	if err != nil {
		return err
	}
	if fromIndex < 0 || fromIndex >= len(model.Waypoints) ||
		toIndex < 0 || toIndex >= len(model.Waypoints) {
		return fmt.Errorf("waypoint index out of range (have %d waypoints)", len(model.Waypoints))
	}
	if steps < 2 {
		return fmt.Errorf("steps must be at least 2")
	}

	start := model.Waypoints[fromIndex]
	cam := &headlessCamera{pos: start.Position}
	if start.LookAt != nil {
		cam.look = *start.LookAt
	}

	ch := choreo.New(cam)
	ch.SetDuration(cfg.DurationMs)
	for _, wp := range model.Waypoints {
		wp.OnEnter = nil
		ch.Add(wp)
	}

	ch.GoTo(toIndex)
	target := model.Waypoints[toIndex].Position

	series := map[string][]float64{"x": nil, "y": nil, "z": nil, "distance": nil}
	delta := cfg.DurationMs / float64(steps)
	for i := 0; i <= steps; i++ {
		series["x"] = append(series["x"], cam.pos.X)
		series["y"] = append(series["y"], cam.pos.Y)
		series["z"] = append(series["z"], cam.pos.Z)
		series["distance"] = append(series["distance"], cam.pos.Sub(target).Length())
		ch.Update(delta)
	}

	fmt.Printf("transition %q -> %q over %.0fms\n\n",
		start.Title, model.Waypoints[toIndex].Title, cfg.DurationMs)

	for _, name := range []string{"distance", "x", "y", "z"} {
		graph := asciigraph.Plot(series[name],
			asciigraph.Height(8),
			asciigraph.Width(70),
			asciigraph.Caption("camera "+name),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

// exported mirrors of the model types, with callbacks stripped.
type exportWayPoint struct {
	ID       string      `json:"id"`
	Title    string      `json:"title"`
	Position [3]float64  `json:"position"`
	LookAt   *[3]float64 `json:"lookAt,omitempty"`
}

type exportPanel struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Content        string     `json:"content"`
	FallbackTarget [3]float64 `json:"fallbackTarget"`
	AnchorID       string     `json:"anchorId,omitempty"`
}

func runExport(cmd *cobra.Command, args []string) error {
	_, model, err := loadModel(cmd, args)
	if err != nil {
		return err
	}

	out := struct {
		Waypoints []exportWayPoint `json:"waypoints"`
		Panels    []exportPanel    `json:"panels"`
	}{}

	vec := func(v geom.Vec3) [3]float64 { return [3]float64{v.X, v.Y, v.Z} }

	for _, wp := range model.Waypoints {
		e := exportWayPoint{ID: wp.ID, Title: wp.Title, Position: vec(wp.Position)}
		if wp.LookAt != nil {
			la := vec(*wp.LookAt)
			e.LookAt = &la
		}
		out.Waypoints = append(out.Waypoints, e)
	}
	for _, p := range model.Panels {
		out.Panels = append(out.Panels, exportPanel{
			ID:             p.ID,
			Title:          p.Title,
			Content:        p.Content,
			FallbackTarget: vec(p.FallbackTarget),
			AnchorID:       p.AnchorID,
		})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, model, err := loadModel(cmd, args)
	if err != nil {
		return err
	}

	var found *content.Panel
	for i := range model.Panels {
		if model.Panels[i].ID == panelID {
			found = &model.Panels[i]
			break
		}
	}
	if found == nil {
		return fmt.Errorf("no panel with id %q", panelID)
	}

	fonts, err := panel.DefaultFonts()
	if err != nil {
		return err
	}
	blocks, err := markup.ParseBlocks(found.Content)
	if err != nil {
		return fmt.Errorf("panel %q: %w", panelID, err)
	}
	sheet := markup.Layout(found.Title, blocks, fonts.Metrics(), cfg.PanelWidth)
	img := panel.Rasterize(sheet, fonts)

	f, err := os.Create(outFile)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return err
	}
	fmt.Println(dimStyle.Render(fmt.Sprintf("wrote %s (%dx%d)",
		outFile, img.Bounds().Dx(), img.Bounds().Dy())))
	return nil
}
