package main

import (
	"fmt"
	"log"

	"github.com/beetlebugorg/kml/pkg/flatten"
	"github.com/beetlebugorg/kml/pkg/kml"
)

func main() {
	doc, err := kml.ReadKMZ("trails.kmz")
	if err != nil {
		log.Fatal(err)
	}

	// Tracks and models have no planar form; drop them
	geoms, err := flatten.FlattenWithOptions(doc, flatten.Options{SkipUnsupported: true})
	if err != nil {
		log.Fatal(err)
	}

	for _, g := range geoms {
		wkt, err := flatten.ToWKT(g, 6)
		if err != nil {
			log.Fatal(err)
		}
		hash, err := flatten.GeoHash(g, flatten.DefaultGeoHashPrecision)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%s  %s\n", hash, wkt)
	}
}
