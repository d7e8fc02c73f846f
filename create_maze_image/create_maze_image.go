// This defines a basic executable for generating an image of a maze.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"image/png"
	"math"
	"os"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/fogleman/gg"
	maze "github.com/yalue/gradient_maze"
	"github.com/yalue/gradient_maze/renderers"
	"github.com/yalue/image_utils"
)

const arrowLength = 16

// The delay after the last frame of an animation, in 100ths of a second.
const finalFrameDelay = 100

// Returns 0 = left, 1 = up, 2 = right, and 3 = down. The given angle must be
// between 0 and 360, if it isn't this will simply return 2.
func angleToArrowDir(angle float32) int {
	if (angle > 45) && (angle <= 135) {
		return 1
	} else if (angle > 135) && (angle <= 225) {
		return 0
	} else if (angle > 225) && (angle < 315) {
		return 3
	}
	return 2
}

// The rotation, in degrees, that turns a right-pointing arrow into one
// pointing in the given direction (as returned by angleToArrowDir).
var arrowRotations = [4]float64{180, 270, 0, 90}

// Draws a filled arrow in a size x size square, pointing in the given
// direction (as returned by angleToArrowDir).
func arrowImage(size, dir int, arrowColor color.Color) image.Image {
	s := float64(size)
	dc := gg.NewContext(size, size)
	dc.RotateAbout(gg.Radians(arrowRotations[dir]), s/2, s/2)
	dc.MoveTo(0, s*0.35)
	dc.LineTo(s*0.5, s*0.35)
	dc.LineTo(s*0.5, s*0.05)
	dc.LineTo(s, s*0.5)
	dc.LineTo(s*0.5, s*0.95)
	dc.LineTo(s*0.5, s*0.65)
	dc.LineTo(0, s*0.65)
	dc.ClosePath()
	dc.SetColor(arrowColor)
	dc.Fill()
	return dc.Image()
}

// Returns an arrow pointing in the direction of the given angle, or at least
// as close to it as we can get (for now). The given angle must be between 0
// and 360 (inclusive).
func getOutlinedArrow(angle float32, arrowColor color.Color) *image.RGBA {
	dir := angleToArrowDir(angle)
	toReturn := image.NewRGBA(image.Rect(0, 0, arrowLength, arrowLength))
	draw.Draw(toReturn, toReturn.Bounds(),
		arrowImage(arrowLength, dir, arrowColor), image.Point{}, draw.Src)
	innerArrow := image_utils.ResizeImage(arrowImage(arrowLength, dir,
		color.White), arrowLength/2, arrowLength/2)
	innerBounds := image.Rect(0, 0, arrowLength/2, arrowLength/2).Add(
		image.Pt(arrowLength/4, arrowLength/4))
	draw.Draw(toReturn, innerBounds, innerArrow, image.Point{}, draw.Over)
	return toReturn
}

// If the tip of the arrow is supposed to be at the given pt (or the tail of
// the arrow, if "away" is true), this returns the top-left where the square
// image returned by getOutlinedArrow should be drawn.
func getArrowTopLeft(pt image.Point, angle float32, away bool) image.Point {
	dir := angleToArrowDir(angle)
	halfLength := arrowLength / 2
	switch dir {
	case 0:
		// Pointing left
		if away {
			// The arrow's tail is at pt, but it's pointing to the left, so it
			// needs to be shifted so the whole arrow is to the left of pt.
			return image.Pt(pt.X-arrowLength-1, pt.Y-halfLength)
		}
		// pt is to the left of the arrow, so just offset it a pixel to the
		// right.
		return image.Pt(pt.X+1, pt.Y-halfLength)
	case 1:
		// Pointing up
		if away {
			return image.Pt(pt.X-halfLength, pt.Y-arrowLength-1)
		}
		return image.Pt(pt.X-halfLength, pt.Y+1)
	case 2:
		// Pointing right
		if away {
			return image.Pt(pt.X+1, pt.Y-halfLength)
		}
		return image.Pt(pt.X-arrowLength-1, pt.Y-halfLength)
	case 3:
		// Pointing down
		if away {
			return image.Pt(pt.X-halfLength, pt.Y+1)
		}
		return image.Pt(pt.X-halfLength, pt.Y-arrowLength-1)
	}
	panic("Invalid arrow direction!")
}

// Returns the angle of an arrow running between pt and the closest edge of
// the given bounds. If away is false the arrow points from the edge towards
// pt, otherwise it points from pt towards the edge.
func edgeAngle(pt image.Point, bounds image.Rectangle, away bool) float32 {
	toLeft := pt.X - bounds.Min.X
	toRight := bounds.Max.X - pt.X
	toTop := pt.Y - bounds.Min.Y
	toBottom := bounds.Max.Y - pt.Y
	// Angles for arrows pointing towards pt.
	angle := float32(0)
	closest := toLeft
	if toRight < closest {
		angle = 180
		closest = toRight
	}
	if toTop < closest {
		angle = 270
		closest = toTop
	}
	if toBottom < closest {
		angle = 90
	}
	if away {
		angle += 180
		if angle >= 360 {
			angle -= 360
		}
	}
	return angle
}

// Returns the pixel at the center of the cell's tile.
func tileCenter(c maze.Coordinate, tileSize int) image.Point {
	return image.Pt(c.X*tileSize+tileSize/2, c.Y*tileSize+tileSize/2)
}

// Draws the solution as a line through the center of every cell on it.
func drawSolutionOverlay(pic *image.RGBA, solution []maze.Coordinate,
	tileSize int, lineColor color.Color) {
	if len(solution) == 0 {
		return
	}
	dc := gg.NewContextForRGBA(pic)
	dc.SetColor(lineColor)
	width := float64(tileSize) / 2
	if width < 1 {
		width = 1
	}
	dc.SetLineWidth(width)
	dc.SetLineCapRound()
	dc.SetLineJoinRound()
	for i, c := range solution {
		pt := tileCenter(c, tileSize)
		if i == 0 {
			dc.MoveTo(float64(pt.X)+0.5, float64(pt.Y)+0.5)
			continue
		}
		dc.LineTo(float64(pt.X)+0.5, float64(pt.Y)+0.5)
	}
	dc.Stroke()
	for _, c := range []maze.Coordinate{solution[0],
		solution[len(solution)-1]} {
		pt := tileCenter(c, tileSize)
		dc.DrawCircle(float64(pt.X)+0.5, float64(pt.Y)+0.5, width)
		dc.Fill()
	}
}

// Adds "decorations" to the maze, including start and end arrows. The maze is
// surrounded by a white border wide enough to fit the arrows. Rasterizes the
// result to an image.RGBA.
func drawMazeDecorations(m *maze.Maze, mazePic *image.RGBA, tileSize,
	borderWidth int) *image.RGBA {
	if borderWidth < arrowLength+2 {
		borderWidth = arrowLength + 2
	}
	bordered := maze.AddImageBorder(mazePic, borderWidth, color.White)
	toReturn := image.NewRGBA(bordered.Bounds())
	draw.Draw(toReturn, toReturn.Bounds(), bordered, image.Point{}, draw.Src)
	blueColor := color.RGBA{100, 120, 255, 255}
	greenColor := color.RGBA{40, 180, 70, 255}
	offset := image.Pt(borderWidth, borderWidth)
	mazeBounds := mazePic.Bounds().Add(offset)
	addArrow := func(arrow *image.RGBA, topLeft image.Point) {
		draw.Draw(toReturn, arrow.Bounds().Add(topLeft), arrow, image.Point{},
			draw.Over)
	}

	startPoint := tileCenter(m.Origin(), tileSize).Add(offset)
	startAngle := edgeAngle(startPoint, mazeBounds, false)
	addArrow(getOutlinedArrow(startAngle, greenColor),
		getArrowTopLeft(startPoint, startAngle, false))

	endPoint := tileCenter(m.End(), tileSize).Add(offset)
	endAngle := edgeAngle(endPoint, mazeBounds, true)
	addArrow(getOutlinedArrow(endAngle, blueColor),
		getArrowTopLeft(endPoint, endAngle, true))
	return toReturn
}

// Returns the candidate closest to the given name, or an empty string if
// none of them are close enough to be a likely typo.
func suggestName(name string, candidates []string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	best := ""
	bestDist := -1
	for _, c := range candidates {
		dist := levenshtein.ComputeDistance(name, c)
		if dist > levenshteinLimit(len(c)) {
			continue
		}
		if (bestDist < 0) || (dist < bestDist) {
			best = c
			bestDist = dist
		}
	}
	return best
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

// Returns an error about an unrecognized name, suggesting the closest valid
// one if there is one.
func unknownNameError(what, name string, candidates []string) error {
	suggestion := suggestName(name, candidates)
	if suggestion != "" {
		return fmt.Errorf("Unknown %s %q. Did you mean %q?", what, name,
			suggestion)
	}
	return fmt.Errorf("Unknown %s %q. Valid choices: %s", what, name,
		strings.Join(candidates, ", "))
}

func algorithmNames() []string {
	kinds := maze.AlgorithmKinds()
	toReturn := make([]string, len(kinds))
	for i, k := range kinds {
		toReturn[i] = k.String()
	}
	return toReturn
}

func parseAlgorithm(name string) (maze.AlgorithmKind, error) {
	kind, e := maze.ParseAlgorithmKind(name)
	if e != nil {
		return kind, unknownNameError("algorithm", name, algorithmNames())
	}
	return kind, nil
}

func parseGradient(name string) (maze.Gradient, error) {
	g, e := maze.ParseGradient(name)
	if e != nil {
		return g, unknownNameError("gradient", name,
			[]string{maze.LengthGradient.String(),
				maze.SolutionGradient.String()})
	}
	return g, nil
}

func parseStyle(name string,
	options renderers.StyleOptions) (maze.Renderer, error) {
	r, e := renderers.NewStyle(name, options)
	if e == nil {
		return r, nil
	}
	valid := false
	for _, s := range renderers.StyleNames() {
		if s == strings.ToLower(strings.TrimSpace(name)) {
			valid = true
		}
	}
	if valid {
		return nil, e
	}
	return nil, unknownNameError("style", name, renderers.StyleNames())
}

// Steps through the algorithm, recording a frame every stride steps, and
// writes the resulting GIF to outFilename. Returns the number of frames
// written.
func writeAnimation(m *maze.Maze, a maze.Algorithm, r maze.Renderer,
	stride, frameDelay int, gradient maze.Gradient,
	outFilename string) (int, error) {
	anim := &gif.GIF{
		LoopCount: 0,
	}
	addFrame := func(delay int) {
		anim.Image = append(anim.Image, maze.DrawFrame(m, r))
		anim.Delay = append(anim.Delay, delay)
	}
	for i := 0; !a.Step(); i++ {
		if (i % stride) == 0 {
			addFrame(frameDelay)
		}
	}
	if gradient == maze.SolutionGradient {
		_, e := m.ComputeSolution()
		if e != nil {
			return 0, fmt.Errorf("Error finding solution: %w", e)
		}
	}
	addFrame(finalFrameDelay)
	f, e := os.Create(outFilename)
	if e != nil {
		return 0, fmt.Errorf("Error creating output file %s: %w",
			outFilename, e)
	}
	defer f.Close()
	e = gif.EncodeAll(f, anim)
	if e != nil {
		return 0, fmt.Errorf("Error writing animation to %s: %w",
			outFilename, e)
	}
	return len(anim.Image), nil
}

// Returns an error if any of the options that only apply to still images
// were set along with -animate.
func checkAnimationFlags(showSolution, arrows bool, borderWidth int) error {
	var unsupported []string
	if showSolution {
		unsupported = append(unsupported, "-show_solution")
	}
	if arrows {
		unsupported = append(unsupported, "-arrows")
	}
	if borderWidth > 0 {
		unsupported = append(unsupported, "-border")
	}
	if len(unsupported) == 0 {
		return nil
	}
	return fmt.Errorf("%s can't be used with -animate",
		strings.Join(unsupported, ", "))
}

// Returns the seed for the random source used by renderers. Renderers get a
// source of their own so that drawing animation frames never changes the
// maze generated from a given seed.
func rendererSeed(seed int64) int64 {
	if seed == math.MaxInt64 {
		return 1
	}
	return seed + 1
}

// Prints the maze to stdout using the path and wall colors.
func writePreview(m *maze.Maze, options *renderers.StyleOptions) error {
	terminal := &renderers.Terminal{
		PathStart: options.PathStart,
		PathEnd:   options.PathEnd,
		Wall:      options.Wall,
	}
	return terminal.Write(os.Stdout, m)
}

func run() int {
	var cellsWide, cellsHigh, borderWidth, frameDelay, stride int
	var randomSeed int64
	var verticalBias, originX, originY float64
	var showSolution, animate, preview, invert, arrows bool
	var outFilename, algorithmName, styleName, gradientName string
	var pathStartName, pathEndName, wallName string
	flag.IntVar(&cellsWide, "cells_wide", 41,
		"The width of the maze, in grid cells.")
	flag.IntVar(&cellsHigh, "cells_high", 41,
		"The height of the maze, in grid cells.")
	flag.StringVar(&algorithmName, "algorithm", "prim",
		"The generation algorithm: prim, kruskal or backtracker.")
	flag.StringVar(&styleName, "style", "plain",
		"How cells are drawn: plain, invaders or mosaic.")
	flag.StringVar(&gradientName, "gradient", "length",
		"What path colors represent: length (distance from the start) or "+
			"solution (distance from the solution).")
	flag.Float64Var(&verticalBias, "vertical_bias", 0.5,
		"The probability of preferring vertical passages, strictly between "+
			"0 and 1.")
	flag.Float64Var(&originX, "origin_x", 0,
		"The relative horizontal position of the start, in [0, 1).")
	flag.Float64Var(&originY, "origin_y", 0,
		"The relative vertical position of the start, in [0, 1).")
	flag.StringVar(&pathStartName, "path_color_start", "#ffffff",
		"The path color at the start of the gradient.")
	flag.StringVar(&pathEndName, "path_color_end", "#ffffff",
		"The path color at the end of the gradient.")
	flag.StringVar(&wallName, "wall_color", "#000000",
		"The color of walls.")
	flag.BoolVar(&invert, "invert", false,
		"Swaps light and dark colors, for the mosaic style.")
	flag.Int64Var(&randomSeed, "random_seed", -1,
		"If positive, specifies the random seed to use.")
	flag.BoolVar(&animate, "animate", false,
		"If set, writes an animated GIF of the generation instead of a PNG.")
	flag.IntVar(&frameDelay, "frame_delay", 2,
		"The delay between animation frames, in 100ths of a second.")
	flag.IntVar(&stride, "animation_stride", 1,
		"Record one animation frame every this many steps.")
	flag.BoolVar(&showSolution, "show_solution", false,
		"If set, draws the solution of the maze over the image.")
	flag.BoolVar(&arrows, "arrows", false,
		"If set, draws arrows marking the start and end of the maze.")
	flag.IntVar(&borderWidth, "border", 0,
		"The width of a white border around the image, in pixels.")
	flag.BoolVar(&preview, "preview", false,
		"If set, also prints the maze to the terminal.")
	flag.StringVar(&outFilename, "output_file", "",
		"The name of the .png (or .gif, with -animate) file to which the "+
			"maze will be saved.")
	flag.Parse()
	if (cellsWide < 1) || (cellsHigh < 1) || (outFilename == "") ||
		(stride < 1) || (frameDelay < 0) {
		fmt.Println("Invalid or missing argument.")
		fmt.Println("Run with -help for more information.")
		return 1
	}
	if animate {
		if e := checkAnimationFlags(showSolution, arrows,
			borderWidth); e != nil {
			fmt.Printf("%s\n", e)
			return 1
		}
	}
	algorithm, e := parseAlgorithm(algorithmName)
	if e != nil {
		fmt.Printf("%s\n", e)
		return 1
	}
	gradient, e := parseGradient(gradientName)
	if e != nil {
		fmt.Printf("%s\n", e)
		return 1
	}
	var options renderers.StyleOptions
	colorArgs := []struct {
		name string
		dst  *color.RGBA
	}{
		{pathStartName, &options.PathStart},
		{pathEndName, &options.PathEnd},
		{wallName, &options.Wall},
	}
	for _, arg := range colorArgs {
		*arg.dst, e = renderers.ParseHexColor(arg.name)
		if e != nil {
			fmt.Printf("%s\n", e)
			return 1
		}
	}
	randomSeed = maze.SeedOf(randomSeed)
	rng := maze.NewRandomSource(randomSeed)
	options.Inverted = invert
	options.Random = maze.NewRandomSource(rendererSeed(randomSeed))
	renderer, e := parseStyle(styleName, options)
	if e != nil {
		fmt.Printf("%s\n", e)
		return 1
	}

	m, e := maze.NewMaze(maze.Geometry{Width: cellsWide, Height: cellsHigh},
		verticalBias, maze.Origin{X: originX, Y: originY})
	if e != nil {
		fmt.Printf("Failed creating maze: %s\n", e)
		return 1
	}
	if animate {
		a, e := maze.NewAlgorithm(algorithm, m, rng)
		if e != nil {
			fmt.Printf("Failed generating maze: %s\n", e)
			return 1
		}
		frames, e := writeAnimation(m, a, renderer, stride, frameDelay,
			gradient, outFilename)
		if e != nil {
			fmt.Printf("%s\n", e)
			return 1
		}
		fmt.Printf("Generated %s with random seed %d OK.\n", m.GetInfo(),
			randomSeed)
		if preview {
			if e = writePreview(m, &options); e != nil {
				fmt.Printf("%s\n", e)
				return 1
			}
		}
		fmt.Printf("Animation %s with %d frames written OK.\n", outFilename,
			frames)
		return 0
	}

	_, e = maze.Generate(algorithm, m, rng)
	if e != nil {
		fmt.Printf("Failed generating maze: %s\n", e)
		return 1
	}
	fmt.Printf("Generated %s with random seed %d OK.\n", m.GetInfo(),
		randomSeed)
	if (gradient == maze.SolutionGradient) || showSolution {
		fmt.Printf("Finding solution to the maze.\n")
		solution, e := m.ComputeSolution()
		if e != nil {
			fmt.Printf("Error finding solution: %s\n", e)
			return 1
		}
		fmt.Printf("The solution passes through %d cells.\n", len(solution))
	}
	if preview {
		if e = writePreview(m, &options); e != nil {
			fmt.Printf("%s\n", e)
			return 1
		}
	}
	mazePic := maze.Draw(m, renderer)
	if showSolution {
		drawSolutionOverlay(mazePic, m.Solution(), renderer.TileSize(),
			color.RGBA{230, 20, 20, 255})
	}
	var finalPic image.Image = maze.AddImageBorder(mazePic, borderWidth,
		color.White)
	if arrows {
		finalPic = drawMazeDecorations(m, mazePic, renderer.TileSize(),
			borderWidth)
	}
	f, e := os.Create(outFilename)
	if e != nil {
		fmt.Printf("Error creating output file %s: %s\n", outFilename, e)
		return 1
	}
	defer f.Close()
	e = png.Encode(f, finalPic)
	if e != nil {
		fmt.Printf("Error writing image to %s: %s\n", outFilename, e)
		return 1
	}
	fmt.Printf("Image %s written OK.\n", outFilename)
	return 0
}

func main() {
	os.Exit(run())
}
