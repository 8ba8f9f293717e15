package gtfs

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path"
	"strconv"
	"strings"
)

// ErrNoRoutes is returned when a feed has no usable routes.txt rows.
var ErrNoRoutes = errors.New("gtfs: feed has no routes")

// NewRouteIndexFromBytes builds a RouteIndex from the bytes of a GTFS zip.
func NewRouteIndexFromBytes(data []byte) (*RouteIndex, error) {
	return NewRouteIndexFromReader(bytes.NewReader(data), int64(len(data)))
}

// NewRouteIndexFromReader builds a RouteIndex from a GTFS zip of the given
// size.
func NewRouteIndexFromReader(r io.ReaderAt, size int64) (*RouteIndex, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("open gtfs zip: %w", err)
	}
	g := newRouteIndex()
	for _, f := range zr.File {
		// Some producers nest the feed in a folder.
		switch strings.ToLower(path.Base(f.Name)) {
		case "routes.txt":
			err = g.consumeCSV(f, g.consumeRoutes)
		case "agency.txt":
			err = g.consumeCSV(f, g.consumeAgency)
		default:
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", f.Name, err)
		}
	}
	if len(g.routeIDs) == 0 {
		return nil, ErrNoRoutes
	}
	return g, nil
}

type table struct {
	head []string
	rows [][]string
}

func (t table) idx(col string) int {
	for i, h := range t.head {
		if strings.EqualFold(strings.TrimSpace(h), col) {
			return i
		}
	}
	return -1
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func (g *RouteIndex) consumeCSV(f *zip.File, consume func(table) error) error {
	r, err := f.Open()
	if err != nil {
		return err
	}
	defer r.Close()
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1
	rec, err := csvr.ReadAll()
	if err != nil {
		return err
	}
	if len(rec) == 0 {
		return nil
	}
	// Strip a UTF-8 byte order mark from the first header.
	rec[0][0] = strings.TrimPrefix(rec[0][0], "\ufeff")
	return consume(table{head: rec[0], rows: rec[1:]})
}

func (g *RouteIndex) consumeRoutes(t table) error {
	rID := t.idx("route_id")
	rSN := t.idx("route_short_name")
	rType := t.idx("route_type")
	if rID < 0 {
		return errors.New("missing route_id column")
	}
	for _, row := range t.rows {
		id := cell(row, rID)
		if id == "" {
			continue
		}
		if _, seen := g.routeShortNames[id]; !seen {
			g.routeIDs = append(g.routeIDs, id)
		}
		g.routeShortNames[id] = cell(row, rSN)
		if typeInt, err := strconv.Atoi(cell(row, rType)); err == nil {
			g.routeTypes[id] = typeInt
		}
	}
	return nil
}

func (g *RouteIndex) consumeAgency(t table) error {
	if len(t.rows) == 0 {
		return nil
	}
	g.agencyID = cell(t.rows[0], t.idx("agency_id"))
	g.agencyName = cell(t.rows[0], t.idx("agency_name"))
	return nil
}
