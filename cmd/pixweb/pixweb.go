// Command pixweb serves sprites and images from jagex2 archives over HTTP.
//
//	pixweb -archive media=datafiles/media -archive title=datafiles/title
//
// then fetch e.g. /pix/media/backbase1/0.png or /jpeg/title/logo.png.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"

	"badc0de.net/pkg/flagutil/v1"
	"github.com/common-nighthawk/go-figure"
	"github.com/golang/glog"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"badc0de.net/pkg/go-jagex2/jagfile"
	"badc0de.net/pkg/go-jagex2/paths"
	"badc0de.net/pkg/go-jagex2/web"
)

var (
	listenAddress = flag.String("listen_address", ":8080", "http listen address for pixweb")
	banner        = flag.Bool("banner", true, "whether to print a banner on startup")

	archiveFlags archiveList
)

// defaultArchives are looked up with paths.Find when no -archive is passed.
var defaultArchives = []string{"title", "media", "textures"}

// archiveList collects repeated -archive name=path flags.
type archiveList map[string]string

func (l *archiveList) String() string {
	if l == nil {
		return ""
	}
	parts := make([]string, 0, len(*l))
	for name, path := range *l {
		parts = append(parts, name+"="+path)
	}
	return strings.Join(parts, ",")
}

func (l *archiveList) Set(v string) error {
	name, path, ok := strings.Cut(v, "=")
	if !ok || name == "" || path == "" {
		return fmt.Errorf("archive %q is not name=path", v)
	}
	if *l == nil {
		*l = archiveList{}
	}
	(*l)[name] = path
	return nil
}

func init() {
	flag.Var(&archiveFlags, "archive", "archive to serve as name=path (jag container or directory); repeatable")
}

func openArchives(list archiveList) map[string]jagfile.Archive {
	if len(list) == 0 {
		list = archiveList{}
		for _, name := range defaultArchives {
			if path := paths.Find(name); path != "" {
				list[name] = path
			}
		}
	}

	archives := make(map[string]jagfile.Archive, len(list))
	for name, path := range list {
		a, err := jagfile.OpenAny(path)
		if err != nil {
			glog.Errorf("skipping archive %s: %v", name, err)
			continue
		}
		glog.Infof("serving archive %s from %s", name, path)
		archives[name] = a
	}
	return archives
}

func main() {
	flagutil.Parse()

	if *banner {
		figure.NewFigure("pixweb", "", true).Print()
	}

	archives := openArchives(archiveFlags)
	if len(archives) == 0 {
		glog.Warningf("no archives to serve")
	}

	r := mux.NewRouter()
	web.NewHandler(archives).RegisterRoutes(r)

	glog.Fatal(http.ListenAndServe(*listenAddress, handlers.LoggingHandler(os.Stderr, r)))
}
