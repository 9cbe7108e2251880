// Command kmlconv reformats, converts and queries KML documents.
//
// Usage:
//
//	kmlconv fmt [--indent] [--decl] [--kmz OUT] FILE
//	kmlconv geojson [--digits N] FILE
//	kmlconv wkt [--digits N] FILE
//	kmlconv query --bbox minLon,minLat,maxLon,maxLat PATH...
//	kmlconv info FILE
//
// FILE may be a .kml document or a .kmz archive. Diagnostics are logged to
// stderr; --verbose enables debug output.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(newApp()).Execute(); err != nil {
		os.Exit(1)
	}
}
