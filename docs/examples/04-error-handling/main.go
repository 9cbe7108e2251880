package main

import (
	"fmt"
	"log"

	"github.com/beetlebugorg/kml/pkg/kml"
	"github.com/cockroachdb/errors"
)

func describe(src string) {
	_, err := kml.ReadString(src)
	if err == nil {
		fmt.Println("ok")
		return
	}

	var malformed *kml.MalformedError
	var coord *kml.CoordParseError
	var enum *kml.InvalidEnumError
	switch {
	case errors.As(err, &malformed):
		fmt.Printf("not XML at offset %d: %v\n", malformed.Offset, malformed.Err)
	case errors.As(err, &coord):
		fmt.Printf("bad coordinates: %v\n", coord)
	case errors.As(err, &enum):
		fmt.Printf("bad %s value %q\n", enum.Type, enum.Value)
	case errors.Is(err, kml.ErrNoElements):
		fmt.Println("empty document")
	default:
		log.Printf("unexpected: %v", err)
	}
}

func main() {
	describe(`<Point><coordinates>1,2</coordinates></Point>`)
	describe(`<Point><coordinates>1,x</coordinates></Point>`)
	describe(`<Point><altitudeMode>sideways</altitudeMode><coordinates>1,2</coordinates></Point>`)
	describe(`<Point><coordinates>1,2</Point>`)
	describe(``)
}
