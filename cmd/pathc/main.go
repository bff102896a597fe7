// Command pathc compiles declarative shape documents into the path
// descriptors an image-editing host consumes.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	proxystuff "github.com/pappnu/proxy-stuff"
	"github.com/pappnu/proxy-stuff/host"
	"github.com/pappnu/proxy-stuff/specfile"
)

func main() {
	app := &cli.Command{
		Name:    "pathc",
		Usage:   "compile declarative shape outlines into host path descriptors",
		Version: proxystuff.Version,
		Commands: []*cli.Command{
			compileCommand(),
			boundsCommand(),
		},
	}
	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "pathc:", err)
		os.Exit(1)
	}
}

func verboseFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:    "verbose",
		Aliases: []string{"v"},
		Usage:   "log compilation details to stderr",
	}
}

func setupLogging(cmd *cli.Command) {
	if cmd.Bool("verbose") {
		proxystuff.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}
}

// selectShapes loads the document named by the first argument and returns
// the shape names to process, honoring --shape.
func selectShapes(cmd *cli.Command) (*specfile.File, []string, error) {
	path := cmd.Args().First()
	if path == "" {
		return nil, nil, fmt.Errorf("missing shape document argument")
	}
	file, err := specfile.Load(path)
	if err != nil {
		return nil, nil, err
	}

	if name := cmd.String("shape"); name != "" {
		if _, ok := file.Shapes[name]; !ok {
			return nil, nil, fmt.Errorf("shape %q not found in %s", name, path)
		}
		return file, []string{name}, nil
	}
	return file, file.Names(), nil
}

func compileOptions(cmd *cli.Command) []proxystuff.CompileOption {
	var opts []proxystuff.CompileOption
	if n := int(cmd.Int("min-points")); n > 0 {
		opts = append(opts, proxystuff.WithMinPoints(n))
	}
	return opts
}

func compileCommand() *cli.Command {
	return &cli.Command{
		Name:      "compile",
		Usage:     "compile shapes from a document into host descriptor JSON",
		ArgsUsage: "<shape-document>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "shape", Aliases: []string{"s"}, Usage: "compile only the named shape"},
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "write JSON to `FILE` instead of stdout"},
			&cli.IntFlag{Name: "min-points", Usage: "reject outlines with fewer than `N` points"},
			verboseFlag(),
		},
		Action: runCompile,
	}
}

func runCompile(_ context.Context, cmd *cli.Command) error {
	setupLogging(cmd)
	file, names, err := selectShapes(cmd)
	if err != nil {
		return err
	}
	opts := compileOptions(cmd)

	descriptors := make([]host.ShapeDescriptor, 0, len(names))
	for _, name := range names {
		sub, err := proxystuff.Compile(file.Shapes[name].PointSpecs(), opts...)
		if err != nil {
			return fmt.Errorf("shape %q: %w", name, err)
		}
		descriptors = append(descriptors, host.NewShapeDescriptor(name, []*proxystuff.Subpath{sub}))
	}

	data, err := json.MarshalIndent(descriptors, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if out := cmd.String("out"); out != "" {
		return os.WriteFile(out, data, 0o644)
	}
	_, err = os.Stdout.Write(data)
	return err
}

func boundsCommand() *cli.Command {
	return &cli.Command{
		Name:      "bounds",
		Usage:     "print the anchor bounding box of each shape",
		ArgsUsage: "<shape-document>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "shape", Aliases: []string{"s"}, Usage: "print only the named shape"},
			verboseFlag(),
		},
		Action: runBounds,
	}
}

func runBounds(_ context.Context, cmd *cli.Command) error {
	setupLogging(cmd)
	file, names, err := selectShapes(cmd)
	if err != nil {
		return err
	}

	for _, name := range names {
		sub, err := proxystuff.Compile(file.Shapes[name].PointSpecs())
		if err != nil {
			return fmt.Errorf("shape %q: %w", name, err)
		}
		b := sub.AnchorBounds()
		fmt.Printf("%s: min=(%g, %g) max=(%g, %g) size=%gx%g\n",
			name, b.Min.X, b.Min.Y, b.Max.X, b.Max.Y, b.Width(), b.Height())
	}
	return nil
}
