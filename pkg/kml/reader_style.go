package kml

import (
	"github.com/beetlebugorg/kml/internal/token"
)

func (r *Reader) readStyle(start token.Event) (*Style, error) {
	style := &Style{Attrs: start.Attrs}
	style.ID, _ = takeAttr(style.Attrs, "id")

	err := r.loop(start, func(ev token.Event) error {
		var err error
		switch ev.Name {
		case "BalloonStyle":
			style.Balloon, err = r.readBalloonStyle(ev)
		case "IconStyle":
			style.Icon, err = r.readIconStyle(ev)
		case "LabelStyle":
			style.Label, err = r.readLabelStyle(ev)
		case "LineStyle":
			style.Line, err = r.readLineStyle(ev)
		case "PolyStyle":
			style.Poly, err = r.readPolyStyle(ev)
		case "ListStyle":
			style.List, err = r.readListStyle(ev)
		default:
			err = r.skip(ev)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return style, nil
}

func (r *Reader) readStyleMap(start token.Event) (*StyleMap, error) {
	sm := &StyleMap{Attrs: start.Attrs}
	sm.ID, _ = takeAttr(sm.Attrs, "id")

	err := r.loop(start, func(ev token.Event) error {
		if ev.Name != "Pair" {
			return r.skip(ev)
		}
		pair, err := r.readPair(ev)
		if err != nil {
			return err
		}
		sm.Pairs = append(sm.Pairs, *pair)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sm, nil
}

func (r *Reader) readPair(start token.Event) (*Pair, error) {
	pair := &Pair{Attrs: start.Attrs}
	err := r.loop(start, func(ev token.Event) error {
		var err error
		switch field(ev) {
		case "key":
			pair.Key, err = r.readScalar(ev)
		case "styleUrl":
			pair.StyleURL, err = r.readScalar(ev)
		default:
			err = r.skip(ev)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return pair, nil
}

func (r *Reader) readBalloonStyle(start token.Event) (*BalloonStyle, error) {
	bs := NewBalloonStyle()
	bs.Attrs = start.Attrs
	bs.ID, _ = takeAttr(bs.Attrs, "id")

	err := r.loop(start, func(ev token.Event) error {
		var err error
		switch field(ev) {
		case "bgColor":
			bs.BgColor, err = r.readOptional(ev)
		case "textColor":
			bs.TextColor, err = r.readScalar(ev)
		case "text":
			bs.Text, err = r.readOptional(ev)
		case "displayMode":
			var s string
			s, err = r.readScalar(ev)
			bs.Display = s != "hide"
		default:
			err = r.skip(ev)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return bs, nil
}

func (r *Reader) readIconStyle(start token.Event) (*IconStyle, error) {
	is := NewIconStyle()
	is.Attrs = start.Attrs
	is.ID, _ = takeAttr(is.Attrs, "id")

	err := r.loop(start, func(ev token.Event) error {
		var err error
		switch field(ev) {
		case "scale":
			is.Scale, err = r.readFloat(ev)
		case "heading":
			is.Heading, err = r.readFloat(ev)
		case "hotSpot":
			is.HotSpot, err = r.readHotSpot(ev)
		case "Icon":
			var link *Link
			if link, err = r.readLink(ev); err != nil {
				return err
			}
			is.Icon = (*Icon)(link)
		case "color":
			is.Color, err = r.readScalar(ev)
		case "colorMode":
			is.ColorMode, err = r.readColorMode(ev)
		default:
			err = r.skip(ev)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return is, nil
}

// readHotSpot reads the attribute-only hotSpot element.
func (r *Reader) readHotSpot(start token.Event) (*Vec2, error) {
	v := &Vec2{}
	var err error
	if s, ok := start.Attrs["x"]; ok {
		if v.X, err = parseFloat("x", s); err != nil {
			return nil, err
		}
	}
	if s, ok := start.Attrs["y"]; ok {
		if v.Y, err = parseFloat("y", s); err != nil {
			return nil, err
		}
	}
	if s, ok := start.Attrs["xunits"]; ok {
		if v.XUnits, err = ParseUnits("xunits", s); err != nil {
			return nil, err
		}
	}
	if s, ok := start.Attrs["yunits"]; ok {
		if v.YUnits, err = ParseUnits("yunits", s); err != nil {
			return nil, err
		}
	}
	if err := r.skip(start); err != nil {
		return nil, err
	}
	return v, nil
}

func (r *Reader) readLabelStyle(start token.Event) (*LabelStyle, error) {
	ls := NewLabelStyle()
	ls.Attrs = start.Attrs
	ls.ID, _ = takeAttr(ls.Attrs, "id")

	err := r.loop(start, func(ev token.Event) error {
		var err error
		switch field(ev) {
		case "color":
			ls.Color, err = r.readScalar(ev)
		case "colorMode":
			ls.ColorMode, err = r.readColorMode(ev)
		case "scale":
			ls.Scale, err = r.readFloat(ev)
		default:
			err = r.skip(ev)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return ls, nil
}

func (r *Reader) readLineStyle(start token.Event) (*LineStyle, error) {
	ls := NewLineStyle()
	ls.Attrs = start.Attrs
	ls.ID, _ = takeAttr(ls.Attrs, "id")

	err := r.loop(start, func(ev token.Event) error {
		var err error
		switch field(ev) {
		case "color":
			ls.Color, err = r.readScalar(ev)
		case "colorMode":
			ls.ColorMode, err = r.readColorMode(ev)
		case "width":
			ls.Width, err = r.readFloat(ev)
		default:
			err = r.skip(ev)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return ls, nil
}

func (r *Reader) readPolyStyle(start token.Event) (*PolyStyle, error) {
	ps := NewPolyStyle()
	ps.Attrs = start.Attrs
	ps.ID, _ = takeAttr(ps.Attrs, "id")

	err := r.loop(start, func(ev token.Event) error {
		var err error
		switch field(ev) {
		case "color":
			ps.Color, err = r.readScalar(ev)
		case "colorMode":
			ps.ColorMode, err = r.readColorMode(ev)
		case "fill":
			ps.Fill, err = r.readBool(ev, true)
		case "outline":
			ps.Outline, err = r.readBool(ev, true)
		default:
			err = r.skip(ev)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return ps, nil
}

func (r *Reader) readListStyle(start token.Event) (*ListStyle, error) {
	ls := NewListStyle()
	ls.Attrs = start.Attrs
	ls.ID, _ = takeAttr(ls.Attrs, "id")

	err := r.loop(start, func(ev token.Event) error {
		var err error
		switch field(ev) {
		case "bgColor":
			ls.BgColor, err = r.readScalar(ev)
		case "maxSnippetLines":
			var s string
			if s, err = r.readScalar(ev); err != nil {
				return err
			}
			ls.MaxSnippetLines, err = parseUint32(ev.Name, s)
		case "listItemType":
			var s string
			if s, err = r.readScalar(ev); err != nil {
				return err
			}
			ls.ListItemType, err = ParseListItemType(ev.Name, s)
		default:
			err = r.skip(ev)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return ls, nil
}

// readLink reads a Link or Icon; both share the same fields.
func (r *Reader) readLink(start token.Event) (*Link, error) {
	link := NewLink()
	link.Attrs = start.Attrs
	link.ID, _ = takeAttr(link.Attrs, "id")

	err := r.loop(start, func(ev token.Event) error {
		var err error
		switch field(ev) {
		case "href":
			link.Href, err = r.readOptional(ev)
		case "refreshMode":
			var s string
			if s, err = r.readScalar(ev); err != nil {
				return err
			}
			link.RefreshMode, err = ParseRefreshMode(ev.Name, s)
		case "refreshInterval":
			link.RefreshInterval, err = r.readFloat(ev)
		case "viewRefreshMode":
			var s string
			if s, err = r.readScalar(ev); err != nil {
				return err
			}
			link.ViewRefreshMode, err = ParseViewRefreshMode(ev.Name, s)
		case "viewRefreshTime":
			link.ViewRefreshTime, err = r.readFloat(ev)
		case "viewBoundScale":
			link.ViewBoundScale, err = r.readFloat(ev)
		case "viewFormat":
			link.ViewFormat, err = r.readOptional(ev)
		case "httpQuery":
			link.HTTPQuery, err = r.readOptional(ev)
		default:
			err = r.skip(ev)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return link, nil
}
