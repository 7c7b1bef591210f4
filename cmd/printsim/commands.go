package main

import (
	"flag"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Faultbox/printsim/internal/config"
	"github.com/Faultbox/printsim/internal/logger"
	"github.com/Faultbox/printsim/internal/octree"
	"github.com/Faultbox/printsim/internal/scene"
	"github.com/Faultbox/printsim/internal/voxel"
)

func loadModel(args []string, usage string) (*scene.Model, error) {
	if len(args) < 1 {
		return nil, fmt.Errorf("usage: %s", usage)
	}
	model, err := scene.LoadOFF(args[0])
	if err != nil {
		return nil, err
	}
	logger.Info("model loaded",
		zap.String("name", model.Name),
		zap.Int("vertices", model.VertexCount()),
		zap.Int("faces", len(model.Faces())))
	return model, nil
}

func cmdOctree(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("octree", flag.ContinueOnError)
	bfs := fs.Bool("bfs", false, "Report nodes in breadth-first order")
	if err := fs.Parse(args); err != nil {
		return err
	}

	model, err := loadModel(fs.Args(), "printsim octree <model.off>")
	if err != nil {
		return err
	}

	tree := octree.Build(model.Bounds(), model.FaceBounds(), cfg.Octree.MaxDepth)

	perDepth := make([]int, tree.MaxDepth()+1)
	mode := octree.DepthFirst
	if *bfs {
		mode = octree.BreadthFirst
	}
	tree.Traverse(func(_ octree.NodeID, n *octree.Node) bool {
		perDepth[n.Depth]++
		return false
	}, tree.Root(), mode)

	fmt.Printf("Model:     %s\n", model.Name)
	fmt.Printf("Bounds:    %v - %v\n", tree.Bounds().Min, tree.Bounds().Max)
	fmt.Printf("Nodes:     %d (%d leaves)\n", tree.Len(), tree.Leaves())
	fmt.Printf("Depth:     %d of %d\n", tree.MaxDepthReached(), tree.MaxDepth())
	fmt.Println()
	fmt.Println("Nodes by depth:")
	for depth, count := range perDepth {
		if count == 0 {
			continue
		}
		fmt.Printf("  %2d  %-8s %d\n", depth, octree.DepthColor(depth).Hex(), count)
	}
	return nil
}

func cmdVoxels(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("voxels", flag.ContinueOnError)
	top := fs.Int("top", 5, "Show the N densest cells")
	if err := fs.Parse(args); err != nil {
		return err
	}

	model, err := loadModel(fs.Args(), "printsim voxels <model.off>")
	if err != nil {
		return err
	}

	grid := voxel.New(model, cfg.Voxel.Density)
	if cfg.Voxel.Workers > 1 {
		grid.FillParallel(model, cfg.Voxel.Workers)
	} else {
		grid.Fill(model)
	}
	stats := grid.Stats()

	fmt.Printf("Model:      %s\n", model.Name)
	fmt.Printf("Grid:       %d x %d x %d (%d cells)\n", grid.Dims[0], grid.Dims[1], grid.Dims[2], grid.Len())
	fmt.Printf("Voxel size: %.4f\n", grid.VoxelSize)
	fmt.Printf("Vertices:   %d\n", grid.Sum())
	if stats.NonZeroCount == 0 {
		fmt.Println("Occupied:   0")
		return nil
	}
	fmt.Printf("Occupied:   %d\n", stats.NonZeroCount)
	fmt.Printf("Min/Max:    %d / %d\n", stats.Min, stats.Max)
	fmt.Printf("Mean:       %.2f\n", stats.Mean)

	occupied := grid.Occupied()
	densest := densestCells(grid, occupied, *top)
	if len(densest) > 0 {
		fmt.Println()
		fmt.Println("Densest cells:")
		for _, i := range densest {
			x, y, z := grid.CellCoord(i)
			fmt.Printf("  (%d, %d, %d)  %-8s %d\n", x, y, z, voxel.CellColor(grid.Cells[i], stats).Hex(), grid.Cells[i])
		}
	}
	return nil
}

// densestCells returns up to n occupied cells with the highest counts.
func densestCells(grid *voxel.Grid, occupied []int, n int) []int {
	var out []int
	for _, i := range occupied {
		pos := len(out)
		for pos > 0 && grid.Cells[out[pos-1]] < grid.Cells[i] {
			pos--
		}
		if pos >= n {
			continue
		}
		out = append(out, 0)
		copy(out[pos+1:], out[pos:])
		out[pos] = i
		if len(out) > n {
			out = out[:n]
		}
	}
	return out
}

func cmdConfig(cfg *config.Config, args []string) error {
	if len(args) < 1 {
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Printf("Config written to %s\n", filepath.Join(config.ConfigDir(), "config.yaml"))
		return nil
	}
	if err := cfg.SaveTo(args[0]); err != nil {
		return err
	}
	fmt.Printf("Config written to %s\n", args[0])
	return nil
}
