// Package web serves decoded sprites and true-color images over HTTP.
package web

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/png"
	"net/http"
	"strconv"

	"github.com/ericpauley/go-quantize/quantize"
	"github.com/golang/glog"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/vincent-petithory/dataurl"

	"badc0de.net/pkg/go-jagex2/draw2d"
	"badc0de.net/pkg/go-jagex2/jagfile"
	"badc0de.net/pkg/go-jagex2/pix24"
)

const generation = 1 // bump if the way we generate images changes

type Handler struct {
	archives map[string]jagfile.Archive
}

// NewHandler constructs a web handler serving images out of the passed
// archives, keyed by the name used in URLs.
func NewHandler(archives map[string]jagfile.Archive) *Handler {
	return &Handler{archives: archives}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/pix/{archive}/{name}/{sprite:[0-9]+}.png", h.pixPNGHandler)
	r.HandleFunc("/pix/{archive}/{name}/{sprite:[0-9]+}.gif", h.pixGIFHandler)
	r.HandleFunc("/pix/{archive}/{name}/{sprite:[0-9]+}.dataurl", h.pixDataURLHandler)
	r.HandleFunc("/jpeg/{archive}/{name}.png", h.jpegHandler)
}

// pixParams are the knobs accepted by the sprite handlers.
type pixParams struct {
	archive, name string
	sprite        int
	flip          string // "", "h", "v" or "hv"
	opaque        bool
	bg            uint32
	hasBG         bool
}

func (p pixParams) etag(mime string) string {
	return fmt.Sprintf(`W/"pix:%d:%s:%s:%d:%s:%v:%v.%06x:%s"`, generation, p.archive, p.name, p.sprite, p.flip, p.opaque, p.hasBG, p.bg, mime)
}

func parsePixParams(r *http.Request) (pixParams, error) {
	vars := mux.Vars(r)
	p := pixParams{archive: vars["archive"], name: vars["name"]}

	var err error
	if p.sprite, err = strconv.Atoi(vars["sprite"]); err != nil {
		return p, errors.New("sprite not a number")
	}
	switch flip := r.URL.Query().Get("flip"); flip {
	case "", "h", "v", "hv":
		p.flip = flip
	default:
		return p, errors.Errorf("flip %q not one of h, v, hv", flip)
	}
	p.opaque = r.URL.Query().Get("opaque") == "1"
	if bg := r.URL.Query().Get("bg"); bg != "" {
		v, err := strconv.ParseUint(bg, 16, 24)
		if err != nil {
			return p, errors.Errorf("bg %q not a RRGGBB color", bg)
		}
		p.bg, p.hasBG = uint32(v), true
	}
	return p, nil
}

func (h *Handler) archive(name string) (jagfile.Archive, error) {
	a, ok := h.archives[name]
	if !ok {
		return nil, errors.Wrapf(jagfile.ErrNotFound, "archive %q", name)
	}
	return a, nil
}

// renderSprite decodes the requested sprite and composites it into its
// crop box, the way the client would draw it at the box's origin.
func (h *Handler) renderSprite(p pixParams) (image.Image, error) {
	a, err := h.archive(p.archive)
	if err != nil {
		return nil, err
	}
	img, err := pix24.FromArchive(a, p.name, p.sprite)
	if err != nil {
		return nil, err
	}
	switch p.flip {
	case "h":
		img.FlipHorizontally()
	case "v":
		img.FlipVertically()
	case "hv":
		img.FlipHorizontally()
		img.FlipVertically()
	}

	w, hgt := img.CropW, img.CropH
	if w == 0 || hgt == 0 {
		w, hgt = img.Width, img.Height
	}
	dst := draw2d.NewSurface(w, hgt)
	if p.hasBG {
		dst.FillRect(0, 0, w, hgt, p.bg)
	}
	if p.opaque {
		img.BlitOpaque(dst, 0, 0)
	} else {
		img.Draw(dst, 0, 0)
	}

	if p.hasBG {
		return dst, nil
	}
	// Without a background, present untouched pixels as transparent.
	return &pix24.Image{Pixels: dst.Pixels, Width: dst.Width, Height: dst.Height}, nil
}

func errorStatus(err error) int {
	if errors.Is(err, jagfile.ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// serveSprite handles parameter parsing, ETag checks and rendering shared by
// all sprite handlers, then hands the image to encode.
func (h *Handler) serveSprite(w http.ResponseWriter, r *http.Request, mime string, encode func(w http.ResponseWriter, img image.Image) error) {
	p, err := parsePixParams(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	etag := p.etag(mime)
	if r.Header.Get("If-None-Match") == etag {
		w.Header().Set("Cache-Control", "public; max-age=36000") // 36000 = 10h
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	img, err := h.renderSprite(p)
	if err != nil {
		glog.Errorf("error rendering %s:%s:%d: %v", p.archive, p.name, p.sprite, err)
		http.Error(w, "failed to decode sprite", errorStatus(err))
		return
	}

	w.Header().Set("Content-Type", mime)
	w.Header().Set("Cache-Control", "public; max-age=36000") // 36000 = 10h
	w.Header().Set("ETag", etag)
	w.WriteHeader(http.StatusOK)
	if err := encode(w, img); err != nil {
		glog.Errorf("error encoding %s:%s:%d as %s: %v", p.archive, p.name, p.sprite, mime, err)
	}
}

func (h *Handler) pixPNGHandler(w http.ResponseWriter, r *http.Request) {
	h.serveSprite(w, r, "image/png", func(w http.ResponseWriter, img image.Image) error {
		return png.Encode(w, img)
	})
}

func (h *Handler) pixGIFHandler(w http.ResponseWriter, r *http.Request) {
	h.serveSprite(w, r, "image/gif", func(w http.ResponseWriter, img image.Image) error {
		return gif.Encode(w, img, &gif.Options{NumColors: 256, Quantizer: &quantize.MedianCutQuantizer{}})
	})
}

func (h *Handler) pixDataURLHandler(w http.ResponseWriter, r *http.Request) {
	h.serveSprite(w, r, "text/plain; charset=utf-8", func(w http.ResponseWriter, img image.Image) error {
		buf := &bytes.Buffer{}
		if err := png.Encode(buf, img); err != nil {
			return err
		}
		byt, err := dataurl.New(buf.Bytes(), "image/png").MarshalText()
		if err != nil {
			return errors.Wrap(err, "failed to encode data url")
		}
		_, err = w.Write(byt)
		return err
	})
}

func (h *Handler) jpegHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	mime := "image/png"
	etag := fmt.Sprintf(`W/"jpeg:%d:%s:%s:%s"`, generation, vars["archive"], vars["name"], mime)
	if r.Header.Get("If-None-Match") == etag {
		w.Header().Set("Cache-Control", "public; max-age=36000") // 36000 = 10h
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	a, err := h.archive(vars["archive"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	img, err := pix24.FromJPEG(a, vars["name"])
	if err != nil {
		glog.Errorf("error decoding %s:%s: %v", vars["archive"], vars["name"], err)
		http.Error(w, "failed to decode image", errorStatus(err))
		return
	}
	dst := draw2d.NewSurface(img.Width, img.Height)
	img.BlitOpaque(dst, 0, 0)

	w.Header().Set("Content-Type", mime)
	w.Header().Set("Cache-Control", "public; max-age=36000") // 36000 = 10h
	w.Header().Set("ETag", etag)
	w.WriteHeader(http.StatusOK)
	if err := png.Encode(w, dst); err != nil {
		glog.Errorf("error encoding %s:%s: %v", vars["archive"], vars["name"], err)
	}
}
