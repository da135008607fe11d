package drawer

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/template"
	"time"

	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"
	"gopkg.in/go-playground/colors.v1" //nolint

	"github.com/askiada/go-mapgen/pkg/pipeline/measure"
)

// DOTDrawer is a drawer that writes the pipeline graph in the DOT language.
type DOTDrawer struct {
	graph       graph.Graph[string, string]
	dotFileName string
}

// NewDOTDrawer creates a new DOT drawer. Draw writes to dotFileName.
func NewDOTDrawer(dotFileName string) *DOTDrawer {
	return &DOTDrawer{
		dotFileName: dotFileName,
		graph:       graph.New(graph.StringHash, graph.Directed()),
	}
}

// AddStep adds a step to the pipeline graph.
func (d *DOTDrawer) AddStep(label string) error {
	err := d.graph.AddVertex(label, graph.VertexAttribute("shape", "box"))
	if err != nil {
		return errors.Wrapf(err, "unable to add step vertex %s", label)
	}

	return nil
}

// AddAttribute adds an attribute version to the pipeline graph.
func (d *DOTDrawer) AddAttribute(version string) error {
	err := d.graph.AddVertex(version, graph.VertexAttribute("shape", "ellipse"))
	if err != nil {
		return errors.Wrapf(err, "unable to add attribute vertex %s", version)
	}

	return nil
}

// AddLink adds a link between two vertices. Adding the same link twice is a no-op.
func (d *DOTDrawer) AddLink(parent, child string) error {
	err := d.graph.AddEdge(parent, child)
	if err != nil && !errors.Is(err, graph.ErrEdgeAlreadyExists) {
		return errors.Wrapf(err, "unable to add edge from %s to %s", parent, child)
	}

	return nil
}

// Draw creates a DOT file with the pipeline graph.
func (d *DOTDrawer) Draw() error {
	file, err := os.Create(d.dotFileName)
	if err != nil {
		return errors.Wrapf(err, "unable to create file %s", d.dotFileName)
	}
	defer file.Close()

	err = d.DrawTo(file)
	if err != nil {
		return errors.Wrapf(err, "unable to create dot file %s", d.dotFileName)
	}

	return file.Close()
}

// DrawTo writes the pipeline graph to wrt.
func (d *DOTDrawer) DrawTo(wrt io.Writer) error {
	return dot(d.graph, wrt)
}

// SetTotalTime sets the total time for a vertex.
func (d *DOTDrawer) SetTotalTime(vertex string, startTime time.Time) error {
	_, properties, err := d.graph.VertexWithProperties(vertex)
	if err != nil {
		return errors.Wrapf(err, "unable to get %s vertex properties", vertex)
	}

	properties.Attributes["xlabel"] = time.Since(startTime).String()

	return nil
}

const maxRGB = 240

// AddMeasure labels step vertices with their timings and colours snapshot edges from blue
// (fastest) to red (slowest).
func (d *DOTDrawer) AddMeasure(msr measure.Measure) error {
	seen := make(map[time.Duration]struct{})
	sorted := []time.Duration{}

	for _, step := range msr.AllMetrics() {
		for _, elapsed := range step.AVGSnapshotDuration() {
			if elapsed == 0 {
				continue
			}

			if _, ok := seen[elapsed]; ok {
				continue
			}

			seen[elapsed] = struct{}{}
			sorted = append(sorted, elapsed)
		}
	}

	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] > sorted[j]
	})

	palette := make(map[time.Duration]string, len(sorted))

	if len(sorted) > 0 {
		maxValue := sorted[0]
		minValue := sorted[len(sorted)-1]

		for _, curr := range sorted {
			fraction := 1.0
			if maxValue > minValue {
				fraction = float64(curr-minValue) / float64(maxValue-minValue)
			}

			red := maxRGB * fraction
			blue := maxRGB - red

			colour, err := colors.RGB(uint8(red), 0, uint8(blue)) //nolint
			if err != nil {
				return errors.Wrap(err, "unable to get colour")
			}

			palette[curr] = colour.ToHEX().String()
		}
	}

	err := d.updateMetrics(msr, palette)
	if err != nil {
		return errors.Wrap(err, "unable to update metrics")
	}

	return nil
}

func (d *DOTDrawer) updateMetrics(msr measure.Measure, palette map[time.Duration]string) error {
	predecessors, err := d.graph.PredecessorMap()
	if err != nil {
		return errors.Wrap(err, "unable to get predecessor map")
	}

	for label, step := range msr.AllMetrics() {
		_, properties, err := d.graph.VertexWithProperties(label)
		if err != nil {
			return errors.Wrap(err, "unable to get vertex properties")
		}

		xlabel := []string{}
		if rows := step.Rows(); rows > 0 {
			xlabel = append(xlabel, fmt.Sprintf("%d rows, avg %s", rows, step.AVGDuration()))
		}

		if step.GetTotalDuration() > 0 {
			xlabel = append(xlabel, "end: "+step.GetTotalDuration().String())
		}

		if len(xlabel) > 0 {
			properties.Attributes["xlabel"] = strings.Join(xlabel, ", ")
		}

		snapshots := step.AVGSnapshotDuration()

		for version := range predecessors[label] {
			elapsed, ok := snapshots[AttributeName(version)]
			if !ok || elapsed == 0 {
				continue
			}

			err := d.graph.UpdateEdge(version, label,
				graph.EdgeAttribute("label", elapsed.String()),
				graph.EdgeAttribute("fontcolor", "blue"),
				graph.EdgeAttribute("color", palette[elapsed]),
			)
			if err != nil {
				return errors.Wrap(err, "unable to update edge")
			}
		}
	}

	return nil
}

// AttributeVersion names the vertex of attribute name as written by the step at index.
func AttributeVersion(name string, index int) string {
	return fmt.Sprintf("%s@%d", name, index)
}

// AttributeName returns the attribute name of a vertex built by AttributeVersion.
func AttributeName(version string) string {
	idx := strings.LastIndex(version, "@")
	if idx < 0 {
		return version
	}

	return version[:idx]
}

//nolint:lll //this is a template
const dotTemplate = `strict {{.GraphType}} {
	{{range $k, $v := .Attributes}}
		{{$k}}="{{$v}}";
	{{end}}
	{{range $s := .Statements}}
		"{{.Source}}" {{if .Target}}{{$.EdgeOperator}} "{{.Target}}" [ {{range $k, $v := .EdgeAttributes}}{{$k}}="{{$v}}", {{end}} weight={{.EdgeWeight}} ]{{else}}[ {{range $k, $v := .HTMLAttributes}}{{$k}}={{$v}}, {{end}} {{range $k, $v := .SourceAttributes}}{{$k}}="{{$v}}", {{end}} weight={{.SourceWeight}} ]{{end}};
	{{end}}
	}
	`

type description struct {
	GraphType    string
	Attributes   map[string]string
	EdgeOperator string
	Statements   []statement
}

type statement struct {
	Source           string
	Target           string
	SourceAttributes map[string]string
	HTMLAttributes   map[string]string
	EdgeAttributes   map[string]string
	SourceWeight     int
	EdgeWeight       int
}

func dot(g graph.Graph[string, string], wrt io.Writer, options ...func(*description)) error {
	desc, err := generateDOT(g, options...)
	if err != nil {
		return errors.Wrap(err, "failed to generate DOT description")
	}

	return renderDOT(wrt, desc)
}

// GraphAttribute is a functional option for the DOT output.
func GraphAttribute(key, value string) func(*description) {
	return func(d *description) {
		d.Attributes[key] = value
	}
}

// generateDOT lists vertices then edges, both sorted, so the same graph always renders the same.
func generateDOT(gra graph.Graph[string, string], options ...func(*description)) (description, error) {
	desc := description{
		GraphType:    "graph",
		Attributes:   make(map[string]string),
		EdgeOperator: "--",
		Statements:   make([]statement, 0),
	}

	for _, option := range options {
		option(&desc)
	}

	if gra.Traits().IsDirected {
		desc.GraphType = "digraph"
		desc.EdgeOperator = "->"
	}

	adjacencyMap, err := gra.AdjacencyMap()
	if err != nil {
		return desc, errors.Wrap(err, "unable to get adjacency map")
	}

	vertices := make([]string, 0, len(adjacencyMap))
	for vertex := range adjacencyMap {
		vertices = append(vertices, vertex)
	}

	sort.Strings(vertices)

	edges := []statement{}

	for _, vertex := range vertices {
		_, sourceProperties, err := gra.VertexWithProperties(vertex)
		if err != nil {
			return desc, errors.Wrap(err, "unable to get vertex properties")
		}

		htmlAttributes := make(map[string]string)

		if xlabel, ok := sourceProperties.Attributes["xlabel"]; ok {
			htmlAttributes["label"] = fmt.Sprintf(`<%s <BR /> <FONT POINT-SIZE="12">%s</FONT>>`, vertex, xlabel)

			delete(sourceProperties.Attributes, "xlabel")
		}

		desc.Statements = append(desc.Statements, statement{
			Source:           vertex,
			SourceWeight:     sourceProperties.Weight,
			SourceAttributes: sourceProperties.Attributes,
			HTMLAttributes:   htmlAttributes,
		})

		for adjacency, edge := range adjacencyMap[vertex] {
			edges = append(edges, statement{
				Source:         vertex,
				Target:         adjacency,
				EdgeWeight:     edge.Properties.Weight,
				EdgeAttributes: edge.Properties.Attributes,
			})
		}
	}

	sort.Slice(edges, func(i, j int) bool {
		if edges[i].Source != edges[j].Source {
			return edges[i].Source < edges[j].Source
		}

		return edges[i].Target < edges[j].Target
	})

	desc.Statements = append(desc.Statements, edges...)

	return desc, nil
}

func renderDOT(wrt io.Writer, desc description) error {
	tpl, err := template.New("dotTemplate").Parse(dotTemplate)
	if err != nil {
		return errors.Wrap(err, "failed to parse template")
	}

	err = tpl.Execute(wrt, desc)
	if err != nil {
		return errors.Wrap(err, "unable to execute template")
	}

	return nil
}

var _ Drawer = (*DOTDrawer)(nil)
