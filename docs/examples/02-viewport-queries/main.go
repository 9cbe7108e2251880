package main

import (
	"fmt"
	"log"

	"github.com/beetlebugorg/kml/pkg/index"
	"github.com/spf13/afero"
)

func main() {
	// Index every .kml and .kmz file below a directory
	idx, errs, err := index.BuildFromDir(afero.NewOsFs(), "tracks", index.DefaultLoadOptions())
	if err != nil {
		log.Fatal(err)
	}
	for _, e := range errs {
		log.Printf("skipped: %v", e)
	}

	fmt.Printf("Indexed %d placemarks covering %s\n", idx.Count(), idx.Bounds())

	// Query a viewport
	viewport := index.Bounds{
		MinLon: -71.5, MaxLon: -71.0,
		MinLat: 42.0, MaxLat: 42.5,
	}
	for _, e := range idx.Query(viewport) {
		fmt.Printf("%s: %s (%s)\n", e.Source, e.Name, e.GeoHash)
	}
}
