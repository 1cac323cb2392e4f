package network

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bricktsre/Airline-graph/core"
)

// Load parses a route file from r.
//
// The header (city count and names) is line oriented; route tuples are read as a
// stream of whitespace-separated tokens, so line breaks and line length inside the
// tuple section do not matter.
func Load(r io.Reader) (*Network, error) {
	br := bufio.NewReader(r)
	next := func() (string, bool, error) {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", false, err
		}
		if line == "" && err != nil {
			return "", false, nil
		}

		return strings.TrimRight(line, "\r\n"), true, nil
	}

	// 1) City count.
	head, ok, err := next()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: empty input", ErrBadFormat)
	}
	count, err := strconv.Atoi(strings.TrimSpace(head))
	if err != nil || count < 0 {
		return nil, fmt.Errorf("%w: line 1: city count %q", ErrBadFormat, head)
	}

	// 2) One name per line.
	cities := make([]string, 0, count)
	for len(cities) < count {
		name, ok, err := next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w: expected %d cities, found %d", ErrBadFormat, count, len(cities))
		}
		cities = append(cities, strings.TrimSpace(name))
	}
	n, err := New(cities)
	if err != nil {
		return nil, err
	}

	// 3) Route tuples, free-form whitespace.
	sc := bufio.NewScanner(br)
	sc.Split(bufio.ScanWords)
	var fields []string
	for sc.Scan() {
		fields = append(fields, sc.Text())
	}
	if err = sc.Err(); err != nil {
		return nil, err
	}
	if len(fields)%4 != 0 {
		return nil, fmt.Errorf("%w: %d trailing route fields", ErrBadFormat, len(fields)%4)
	}
	for i := 0; i < len(fields); i += 4 {
		route, err := parseRoute(fields[i : i+4])
		if err != nil {
			return nil, fmt.Errorf("%w: route %d: %v", ErrBadFormat, i/4+1, err)
		}
		if _, err = n.graph.AddEdge(route.V, route.W, route.Distance, route.Price); err != nil {
			return nil, fmt.Errorf("route %d: %w", i/4+1, err)
		}
	}

	return n, nil
}

// parseRoute converts one 1-based "v w distance price" tuple.
func parseRoute(f []string) (core.Route, error) {
	v, err := strconv.Atoi(f[0])
	if err != nil {
		return core.Route{}, err
	}
	w, err := strconv.Atoi(f[1])
	if err != nil {
		return core.Route{}, err
	}
	d, err := strconv.ParseInt(f[2], 10, 64)
	if err != nil {
		return core.Route{}, err
	}
	p, err := strconv.ParseFloat(f[3], 64)
	if err != nil {
		return core.Route{}, err
	}

	return core.Route{V: v - 1, W: w - 1, Distance: d, Price: p}, nil
}

// LoadFile opens path and parses it with Load.
func LoadFile(path string) (*Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	n, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return n, nil
}

// Write serialises n in the format Load reads, routes in insertion order.
func (n *Network) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, len(n.cities))
	for _, c := range n.cities {
		fmt.Fprintln(bw, c)
	}
	for _, r := range n.graph.Routes() {
		fmt.Fprintf(bw, "%d %d %d %s\n", r.V+1, r.W+1, r.Distance, strconv.FormatFloat(r.Price, 'f', -1, 64))
	}

	return bw.Flush()
}

// defaultFileMode is used when SaveFile creates a new route file.
const defaultFileMode os.FileMode = 0o644

// SaveFile writes n to path through a temporary file in the same directory.
// An existing file keeps its permission bits.
func (n *Network) SaveFile(path string) error {
	mode := defaultFileMode
	if fi, err := os.Stat(path); err == nil {
		mode = fi.Mode().Perm()
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".routes-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err = n.Write(tmp); err != nil {
		tmp.Close()
		return err
	}
	// CreateTemp opens with 0600.
	if err = tmp.Chmod(mode); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}
