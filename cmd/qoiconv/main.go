// qoiconv converts QOI images, optionally zstd-compressed, to PNG.
package main

import (
	"bufio"
	"fmt"
	"image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"

	"github.com/conradludgate/image-qoi/imgconv"
	"github.com/conradludgate/image-qoi/qoi"
)

func main() {
	log.SetFlags(0)

	if len(os.Args) < 2 || len(os.Args) > 3 {
		fmt.Fprint(os.Stderr, "Usage: qoiconv <input.qoi[.zst]> [output.png]\n")
		os.Exit(1)
	}

	inPath := os.Args[1]
	outPath := pngPath(inPath)
	if len(os.Args) == 3 {
		outPath = os.Args[2]
	}

	width, height, format, err := convert(inPath, outPath)
	if err != nil {
		log.Fatalf("convert error: %v", err)
	}
	fmt.Printf("Decoded %s (%dx%d %s) → %s\n", inPath, width, height, format, outPath)
}

// pngPath derives the default output name: strip a .zst suffix if present,
// then swap the remaining extension for .png.
func pngPath(in string) string {
	base := strings.TrimSuffix(in, ".zst")
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return base + ".png"
}

func convert(inPath, outPath string) (width, height int, format qoi.Format, err error) {
	in, err := os.Open(inPath)
	if err != nil {
		return 0, 0, 0, err
	}
	defer in.Close()

	var src io.Reader = bufio.NewReader(in)
	if strings.HasSuffix(inPath, ".zst") {
		zr, zerr := zstd.NewReader(src)
		if zerr != nil {
			return 0, 0, 0, zerr
		}
		defer zr.Close()
		src = zr
	}

	z, err := qoi.NewReader(src)
	if err != nil {
		return 0, 0, 0, err
	}

	width, height = z.Dimensions()
	format = z.Format()

	raw := make([]byte, width*height*format.Channels())
	if _, err := io.ReadFull(z, raw); err != nil {
		return 0, 0, 0, err
	}

	out, err := os.Create(outPath)
	if err != nil {
		return 0, 0, 0, err
	}
	defer out.Close()

	if err := png.Encode(out, imgconv.FromRaw(raw, width, height, format.Channels())); err != nil {
		return 0, 0, 0, err
	}

	return width, height, format, nil
}
