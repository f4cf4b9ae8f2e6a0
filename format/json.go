package format

import (
	"encoding/json"
	"io"
	"sort"

	"github.com/yongjiguan/repESP/gausslog"
)

type JSONEncoder struct {
	w   io.Writer
	rep *gausslog.Report
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(rep *gausslog.Report) error {
	e.rep = rep
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	if _, err := e.w.Write(text); err != nil {
		return err
	}
	_, err = e.w.Write([]byte("\n"))
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	return json.MarshalIndent(e.buildReportData(), "", "  ")
}

type jsonReport struct {
	Atoms        []jsonAtom       `json:"atoms"`
	Geometries   []jsonGeometry   `json:"geometries"`
	Basis        *jsonBasis       `json:"basis,omitempty"`
	Orbitals     []jsonOrbitalSet `json:"orbitals,omitempty"`
	Populations  []jsonPopulation `json:"populations,omitempty"`
	Multipoles   *jsonMultipoles  `json:"multipoles,omitempty"`
	Metadata     jsonMetadata     `json:"metadata"`
	Completeness []jsonPresence   `json:"completeness"`
	Diagnostics  []jsonDiagnostic `json:"diagnostics,omitempty"`
}

type jsonAtom struct {
	Index        int    `json:"index"`
	Symbol       string `json:"symbol"`
	AtomicNumber int    `json:"atomicNumber"`
	MassNumber   int    `json:"massNumber,omitempty"`
}

type jsonGeometry struct {
	Orientation string       `json:"orientation"`
	Coords      [][3]float64 `json:"coords"`
}

type jsonBasis struct {
	BasisFunctions     int            `json:"basisFunctions"`
	PrimitiveGaussians int            `json:"primitiveGaussians"`
	CartesianFunctions int            `json:"cartesianFunctions,omitempty"`
	BySymmetry         map[string]int `json:"bySymmetry,omitempty"`
}

type jsonOrbitalSet struct {
	Spin     string        `json:"spin"`
	Orbitals []jsonOrbital `json:"orbitals"`
}

type jsonOrbital struct {
	Index    int     `json:"index"`
	Occupied bool    `json:"occupied"`
	Energy   float64 `json:"energy"`
	Symmetry string  `json:"symmetry,omitempty"`
}

type jsonPopulation struct {
	Scheme  string        `json:"scheme"`
	Charges []jsonCharge  `json:"charges"`
	Natural []jsonNatural `json:"natural,omitempty"`
	Dipole  *jsonDipole   `json:"fittedDipole,omitempty"`
}

type jsonCharge struct {
	Atom   int     `json:"atom"`
	Charge float64 `json:"charge"`
}

type jsonNatural struct {
	Atom    int      `json:"atom"`
	Charge  float64  `json:"charge"`
	Core    *float64 `json:"core,omitempty"`
	Valence *float64 `json:"valence,omitempty"`
	Rydberg *float64 `json:"rydberg,omitempty"`
	Total   *float64 `json:"total,omitempty"`
}

type jsonDipole struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Z     float64 `json:"z"`
	Total float64 `json:"total"`
}

type jsonQuadrupole struct {
	XX float64 `json:"xx"`
	YY float64 `json:"yy"`
	ZZ float64 `json:"zz"`
	XY float64 `json:"xy"`
	XZ float64 `json:"xz"`
	YZ float64 `json:"yz"`
}

type jsonMultipoles struct {
	Dipole              *jsonDipole        `json:"dipole,omitempty"`
	Quadrupole          *jsonQuadrupole    `json:"quadrupole,omitempty"`
	TracelessQuadrupole *jsonQuadrupole    `json:"tracelessQuadrupole,omitempty"`
	Octapole            map[string]float64 `json:"octapole,omitempty"`
	Hexadecapole        map[string]float64 `json:"hexadecapole,omitempty"`
}

type jsonMetadata struct {
	Route        string  `json:"route,omitempty"`
	Method       string  `json:"method,omitempty"`
	BasisSet     string  `json:"basisSet,omitempty"`
	Title        string  `json:"title,omitempty"`
	Charge       int     `json:"charge"`
	Multiplicity int     `json:"multiplicity"`
	Version      string  `json:"version,omitempty"`
	Termination  string  `json:"termination"`
	CPUSeconds   float64 `json:"cpuSeconds,omitempty"`
	WallSeconds  float64 `json:"wallSeconds,omitempty"`
}

type jsonPresence struct {
	Section string `json:"section"`
	Status  string `json:"status"`
}

type jsonDiagnostic struct {
	Section string `json:"section"`
	Line    int    `json:"line,omitempty"`
	EndLine int    `json:"endLine,omitempty"`
	Cause   string `json:"cause"`
}

func (e *JSONEncoder) buildReportData() jsonReport {
	r := e.rep
	data := jsonReport{
		Metadata:     buildMetadata(r.Metadata),
		Completeness: buildCompleteness(r.Completeness),
	}
	for _, a := range r.Atoms {
		data.Atoms = append(data.Atoms, jsonAtom(a))
	}
	for _, g := range r.Geometries {
		jg := jsonGeometry{Orientation: g.Orientation}
		for _, c := range g.Coords {
			jg.Coords = append(jg.Coords, [3]float64{c.X, c.Y, c.Z})
		}
		data.Geometries = append(data.Geometries, jg)
	}
	if r.Basis != nil {
		data.Basis = &jsonBasis{
			BasisFunctions:     r.Basis.BasisFunctions,
			PrimitiveGaussians: r.Basis.PrimitiveGaussians,
			CartesianFunctions: r.Basis.CartesianFunctions,
			BySymmetry:         r.Basis.BySymmetry,
		}
	}
	for _, set := range r.Orbitals {
		js := jsonOrbitalSet{Spin: string(set.Spin)}
		for _, o := range set.Orbitals {
			js.Orbitals = append(js.Orbitals, jsonOrbital(o))
		}
		data.Orbitals = append(data.Orbitals, js)
	}
	for _, p := range r.Populations {
		data.Populations = append(data.Populations, buildPopulation(p))
	}
	if r.Multipoles != nil {
		data.Multipoles = buildMultipoles(r.Multipoles)
	}
	for _, d := range r.Diagnostics {
		data.Diagnostics = append(data.Diagnostics, jsonDiagnostic{
			Section: d.Section.String(),
			Line:    d.Line,
			EndLine: d.EndLine,
			Cause:   d.Cause,
		})
	}
	return data
}

func buildPopulation(p gausslog.PopulationRecord) jsonPopulation {
	jp := jsonPopulation{Scheme: string(p.Scheme)}
	for _, c := range p.Charges {
		jp.Charges = append(jp.Charges, jsonCharge(c))
	}
	for _, n := range p.Natural {
		jp.Natural = append(jp.Natural, jsonNatural(n))
	}
	if p.Dipole != nil {
		jp.Dipole = dipoleData(p.Dipole)
	}
	return jp
}

func buildMultipoles(m *gausslog.MultipoleMoments) *jsonMultipoles {
	jm := &jsonMultipoles{
		Octapole:     m.Octapole,
		Hexadecapole: m.Hexadecapole,
	}
	if m.Dipole != nil {
		jm.Dipole = dipoleData(m.Dipole)
	}
	if m.Quadrupole != nil {
		q := jsonQuadrupole(*m.Quadrupole)
		jm.Quadrupole = &q
	}
	if m.TracelessQuadrupole != nil {
		q := jsonQuadrupole(*m.TracelessQuadrupole)
		jm.TracelessQuadrupole = &q
	}
	return jm
}

func dipoleData(d *gausslog.Dipole) *jsonDipole {
	return &jsonDipole{X: d.X, Y: d.Y, Z: d.Z, Total: d.Total}
}

func buildMetadata(m gausslog.JobMetadata) jsonMetadata {
	return jsonMetadata{
		Route:        m.Route,
		Method:       m.Method,
		BasisSet:     m.BasisSet,
		Title:        m.Title,
		Charge:       m.Charge,
		Multiplicity: m.Multiplicity,
		Version:      m.Version,
		Termination:  string(m.Termination),
		CPUSeconds:   m.CPUTime.Seconds(),
		WallSeconds:  m.ElapsedTime.Seconds(),
	}
}

// buildCompleteness flattens the presence map into a stable, sorted
// list so that encoding the same report twice gives the same bytes.
func buildCompleteness(m map[gausslog.SectionKind]gausslog.Presence) []jsonPresence {
	entries := make([]jsonPresence, 0, len(m))
	for kind, presence := range m {
		entries = append(entries, jsonPresence{Section: kind.String(), Status: presence.String()})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Section < entries[j].Section })
	return entries
}
