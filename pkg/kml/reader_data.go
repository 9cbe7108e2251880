package kml

import (
	"github.com/beetlebugorg/kml/internal/token"
)

func (r *Reader) readSchemaData(start token.Event) (*SchemaData, error) {
	sd := &SchemaData{Attrs: start.Attrs}
	err := r.loop(start, func(ev token.Event) error {
		switch ev.Name {
		case "SimpleData":
			d, err := r.readSimpleData(ev)
			if err != nil {
				return err
			}
			sd.Data = append(sd.Data, *d)
		case "SimpleArrayData":
			a, err := r.readSimpleArrayData(ev)
			if err != nil {
				return err
			}
			sd.Arrays = append(sd.Arrays, *a)
		default:
			return r.skip(ev)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sd, nil
}

func (r *Reader) readSimpleData(start token.Event) (*SimpleData, error) {
	name, err := requireName(start)
	if err != nil {
		return nil, err
	}
	value, err := r.readScalar(start)
	if err != nil {
		return nil, err
	}
	return &SimpleData{Name: name, Value: value, Attrs: start.Attrs}, nil
}

func (r *Reader) readSimpleArrayData(start token.Event) (*SimpleArrayData, error) {
	name, err := requireName(start)
	if err != nil {
		return nil, err
	}
	arr := &SimpleArrayData{Name: name, Attrs: start.Attrs}
	err = r.loop(start, func(ev token.Event) error {
		if ev.Name != "value" {
			return r.skip(ev)
		}
		v, err := r.readScalar(ev)
		if err != nil {
			return err
		}
		arr.Values = append(arr.Values, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return arr, nil
}

func (r *Reader) readResourceMap(start token.Event) (*ResourceMap, error) {
	rm := &ResourceMap{Attrs: start.Attrs}
	err := r.loop(start, func(ev token.Event) error {
		if ev.Name != "Alias" {
			return r.skip(ev)
		}
		a, err := r.readAlias(ev)
		if err != nil {
			return err
		}
		rm.Aliases = append(rm.Aliases, *a)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rm, nil
}

func (r *Reader) readAlias(start token.Event) (*Alias, error) {
	a := &Alias{Attrs: start.Attrs}
	err := r.loop(start, func(ev token.Event) error {
		var err error
		switch field(ev) {
		case "targetHref":
			a.TargetHref, err = r.readOptional(ev)
		case "sourceHref":
			a.SourceHref, err = r.readOptional(ev)
		default:
			err = r.skip(ev)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *Reader) readScale(start token.Event) (*Scale, error) {
	s := NewScale()
	s.Attrs = start.Attrs
	err := r.loop(start, func(ev token.Event) error {
		var err error
		switch field(ev) {
		case "x":
			s.X, err = r.readFloat(ev)
		case "y":
			s.Y, err = r.readFloat(ev)
		case "z":
			s.Z, err = r.readFloat(ev)
		default:
			err = r.skip(ev)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *Reader) readOrientation(start token.Event) (*Orientation, error) {
	o := &Orientation{Attrs: start.Attrs}
	err := r.loop(start, func(ev token.Event) error {
		var err error
		switch field(ev) {
		case "roll":
			o.Roll, err = r.readFloat(ev)
		case "tilt":
			o.Tilt, err = r.readFloat(ev)
		case "heading":
			o.Heading, err = r.readFloat(ev)
		default:
			err = r.skip(ev)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (r *Reader) readLocation(start token.Event) (*Location, error) {
	l := &Location{Attrs: start.Attrs}
	err := r.loop(start, func(ev token.Event) error {
		var err error
		switch field(ev) {
		case "longitude":
			l.Longitude, err = r.readFloat(ev)
		case "latitude":
			l.Latitude, err = r.readFloat(ev)
		case "altitude":
			l.Altitude, err = r.readFloat(ev)
		default:
			err = r.skip(ev)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return l, nil
}
