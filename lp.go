package dropoff

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-logr/logr"
)

const indent = "\t"

// Document holds the sections of an LP file in the order they are written.
type Document struct {
	Objective   []string
	Constraints []string
	Bounds      []string
	Binary      []string
	Integers    []string
}

func (d *Document) String() string {
	var b strings.Builder
	writeLines := func(lines []string) {
		for _, l := range lines {
			b.WriteString(indent)
			b.WriteString(l)
			b.WriteString("\n")
		}
	}
	writeVars := func(vars []string) {
		if len(vars) == 0 {
			return
		}
		b.WriteString(indent)
		b.WriteString(strings.Join(vars, " "))
		b.WriteString("\n")
	}

	b.WriteString("Minimize\n")
	writeLines(d.Objective)
	b.WriteString("Subject To\n")
	writeLines(d.Constraints)
	b.WriteString("Bounds\n")
	writeLines(d.Bounds)
	b.WriteString("Binary\n")
	writeVars(d.Binary)
	b.WriteString("Integers\n")
	writeVars(d.Integers)
	b.WriteString("End\n")
	return b.String()
}

type Option func(*Generator)

var WithLogr = func(log logr.Logger) Option {
	return func(g *Generator) {
		g.log = log
	}
}

// WithConfig takes the comparator, objective mode and driving factor from cfg.
var WithConfig = func(cfg Config) Option {
	return func(g *Generator) {
		g.comparator = cfg.SourceComparator
		g.objective = cfg.Objective
		g.drivingFactor = cfg.DrivingFactor
	}
}

// Generator turns instances into LP documents. It keeps no state between runs.
type Generator struct {
	log           logr.Logger
	comparator    string
	objective     string
	drivingFactor float64
}

func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		log:           logr.Discard(),
		comparator:    COMPARATOR_GT,
		objective:     OBJECTIVE_NONE,
		drivingFactor: DefaultDrivingFactor,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Build produces every section of the LP document for inst. The instance is not
// validated up front; a bad house, start or matrix fails the section that uses it.
func (g *Generator) Build(inst *Instance) (*Document, error) {
	n := inst.LocationCount
	if n < 2 {
		return nil, fmt.Errorf("%w: need at least two locations, got %d", ErrInvalidInput, n)
	}
	if len(inst.Locations) != n {
		return nil, fmt.Errorf("%w: %d names for %d locations", ErrShapeMismatch, len(inst.Locations), n)
	}
	idx := BuildIndexMap(inst.Locations)
	log := g.log.WithValues("instance", inst.Name)

	doc := &Document{}
	var err error
	if doc.Objective, err = Objective(inst, idx, g.objective, g.drivingFactor); err != nil {
		return nil, fmt.Errorf("objective: %w", err)
	}

	coverage, err := CoverageConstraints(inst, idx)
	if err != nil {
		return nil, fmt.Errorf("coverage constraints: %w", err)
	}
	degree := DegreeConstraints(inst)
	subtour := SubtourConstraints(inst)
	valid, err := DropoffConstraints(inst, idx)
	if err != nil {
		return nil, fmt.Errorf("dropoff constraints: %w", err)
	}
	source, err := SourceConstraint(inst, idx, g.comparator)
	if err != nil {
		return nil, fmt.Errorf("source constraint: %w", err)
	}
	log.V(1).Info("constraints generated",
		"coverage", len(coverage), "degree", len(degree), "subtour", len(subtour), "dropoff", len(valid))

	doc.Constraints = make([]string, 0, len(coverage)+len(degree)+len(subtour)+len(valid)+1)
	doc.Constraints = append(doc.Constraints, coverage...)
	doc.Constraints = append(doc.Constraints, degree...)
	doc.Constraints = append(doc.Constraints, subtour...)
	doc.Constraints = append(doc.Constraints, valid...)
	doc.Constraints = append(doc.Constraints, source)

	if doc.Bounds, err = Bounds(inst); err != nil {
		return nil, fmt.Errorf("bounds: %w", err)
	}
	if doc.Binary, err = BinaryVars(inst, idx); err != nil {
		return nil, fmt.Errorf("binary: %w", err)
	}
	doc.Integers = IntegerVars(inst)
	log.V(1).Info("domains generated", "bounds", len(doc.Bounds), "binary", len(doc.Binary), "integers", len(doc.Integers))
	return doc, nil
}

func (g *Generator) Assemble(inst *Instance) (string, error) {
	doc, err := g.Build(inst)
	if err != nil {
		return "", err
	}
	return doc.String(), nil
}

// Generate writes the LP document to w. Nothing is written when generation fails.
func (g *Generator) Generate(inst *Instance, w io.Writer) error {
	text, err := g.Assemble(inst)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, text)
	return err
}
