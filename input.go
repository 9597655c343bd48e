package dropoff

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ParseInput reads the text instance format: location count, house count,
// locations, houses, start and one matrix row per location, one record per line.
func ParseInput(r io.Reader) (*Instance, error) {
	var rows [][]string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		rows = append(rows, fields)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(rows) < 5 {
		return nil, fmt.Errorf("%w: expected at least 5 records, got %d", ErrInvalidInput, len(rows))
	}

	inst := &Instance{}
	var err error
	if inst.LocationCount, err = strconv.Atoi(rows[0][0]); err != nil {
		return nil, fmt.Errorf("%w: number of locations %q", ErrInvalidInput, rows[0][0])
	}
	if inst.HouseCount, err = strconv.Atoi(rows[1][0]); err != nil {
		return nil, fmt.Errorf("%w: number of houses %q", ErrInvalidInput, rows[1][0])
	}
	inst.Locations = rows[2]
	inst.Houses = rows[3]
	inst.Start = rows[4][0]

	for k, row := range rows[5:] {
		cells := make([]Weight, len(row))
		for j, tok := range row {
			if cells[j], err = ParseWeight(tok); err != nil {
				return nil, fmt.Errorf("matrix row %d: %w", k, err)
			}
		}
		inst.Adjacency = append(inst.Adjacency, cells)
	}
	return inst, nil
}

// WriteInput writes inst in the format read by ParseInput.
func WriteInput(w io.Writer, inst *Instance) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n%d\n", inst.LocationCount, inst.HouseCount)
	fmt.Fprintln(bw, strings.Join(inst.Locations, " "))
	fmt.Fprintln(bw, strings.Join(inst.Houses, " "))
	fmt.Fprintln(bw, inst.Start)
	for _, row := range inst.Adjacency {
		cells := make([]string, len(row))
		for j, c := range row {
			cells[j] = c.String()
		}
		fmt.Fprintln(bw, strings.Join(cells, " "))
	}
	return bw.Flush()
}

// LoadInstance reads a .json instance record or a text instance file.
func LoadInstance(path string) (*Instance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var inst *Instance
	if filepath.Ext(path) == ".json" {
		inst = &Instance{}
		err = json.Unmarshal(data, inst)
	} else {
		inst, err = ParseInput(bytes.NewReader(data))
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if inst.Name == "" {
		inst.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return inst, nil
}

// SaveInstance writes inst as .json (matrix rows kept on one line) or as text.
func SaveInstance(path string, inst *Instance) error {
	if filepath.Ext(path) != ".json" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err = WriteInput(f, inst); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}
	jsonInst, err := json.MarshalIndent(inst, "", "\t")
	if err != nil {
		return err
	}
	jsonInst = []byte(SanitizeJsonArrayLineBreaks(string(jsonInst)))
	return os.WriteFile(path, jsonInst, 0644)
}
