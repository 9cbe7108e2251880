package main

import (
	"fmt"
	"log"

	"github.com/beetlebugorg/kml/pkg/kml"
)

func main() {
	// Parse a document from disk
	doc, err := kml.ReadFile("trails.kml")
	if err != nil {
		log.Fatal(err)
	}

	if root, ok := doc.(*kml.Root); ok {
		fmt.Printf("KML version: %s\n", root.Version)
	}

	// List placemarks in document order
	for _, pm := range kml.Placemarks(doc) {
		name := "(unnamed)"
		if pm.Name != nil {
			name = *pm.Name
		}
		fmt.Printf("Placemark: %s\n", name)
	}

	// Write it back out, indented
	out, err := kml.MarshalIndent(doc)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(out))
}
