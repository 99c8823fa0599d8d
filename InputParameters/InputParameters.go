package InputParameters

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file. The YAML is converted to JSON
// before decoding, so the field tags are JSON tags.
type InputParametersSW2D struct {
	Title          string                        `json:"Title"`
	NX             int                           `json:"NX"`
	NY             int                           `json:"NY"`
	DX             float64                       `json:"DX"`
	DY             float64                       `json:"DY"`
	FinalTime      float64                       `json:"FinalTime"`
	MaxIterations  int                           `json:"MaxIterations"`
	InitType       string                        `json:"InitType"`
	BCs            map[string]string             `json:"BCs"` // Key is the edge name, value the boundary type
	Inflow         map[string]map[string]float64 `json:"Inflow"` // First key is the edge name, second the parameter name
	DryTolerance   float64                       `json:"DryTolerance"`
	Gravity        float64                       `json:"Gravity"`
	ZeroTolerance  float64                       `json:"ZeroTolerance"`
	ParallelDegree int                           `json:"ParallelDegree"`
	BlocksX        int                           `json:"BlocksX"`
	BlocksY        int                           `json:"BlocksY"`
	PlotSteps      int                           `json:"PlotSteps"`
	OutputDir      string                        `json:"OutputDir"`
	OutputFormat   string                        `json:"OutputFormat"` // "vtk", "binary" or empty for none
	// Initial condition parameters
	HLeft       float64 `json:"HLeft"`
	HRight      float64 `json:"HRight"`
	DamPosition float64 `json:"DamPosition"`
	CenterX     float64 `json:"CenterX"`
	CenterY     float64 `json:"CenterY"`
	Surface     float64 `json:"Surface"`
	HumpHeight  float64 `json:"HumpHeight"`
	HumpRadius  float64 `json:"HumpRadius"`
}

var (
	InflowParameterNames = []string{"h", "hu", "hv", "amplitude", "period"}
	OutputFormats        = []string{"", "vtk", "binary"}
)

func (ip *InputParametersSW2D) Parse(data []byte) (err error) {
	if err = yaml.Unmarshal(data, ip); err != nil {
		return
	}
	return ip.Validate()
}

// Validate fills unset optional parameters with defaults and rejects values
// the solver cannot run with.
func (ip *InputParametersSW2D) Validate() (err error) {
	if ip.NX < 1 || ip.NY < 1 {
		return fmt.Errorf("grid needs at least one cell in each direction, have NX = %d, NY = %d", ip.NX, ip.NY)
	}
	if ip.DX == 0 {
		ip.DX = 1
	}
	if ip.DY == 0 {
		ip.DY = ip.DX
	}
	if ip.DX < 0 || ip.DY < 0 {
		return fmt.Errorf("cell sizes must be positive, have DX = %g, DY = %g", ip.DX, ip.DY)
	}
	if ip.FinalTime <= 0 && ip.MaxIterations <= 0 {
		return fmt.Errorf("one of FinalTime or MaxIterations must be positive")
	}
	if ip.Gravity == 0 {
		ip.Gravity = 9.81
	}
	if ip.DryTolerance == 0 {
		ip.DryTolerance = 0.1
	}
	if ip.ZeroTolerance == 0 {
		ip.ZeroTolerance = 1.e-7
	}
	if ip.Gravity < 0 || ip.DryTolerance < 0 || ip.ZeroTolerance < 0 {
		return fmt.Errorf("solver tolerances and gravity must be positive")
	}
	if ip.BlocksX == 0 {
		ip.BlocksX = 1
	}
	if ip.BlocksY == 0 {
		ip.BlocksY = 1
	}
	if ip.BlocksX < 0 || ip.BlocksY < 0 || ip.BlocksX > ip.NX || ip.BlocksY > ip.NY {
		return fmt.Errorf("cannot tile %d x %d cells with %d x %d blocks", ip.NX, ip.NY, ip.BlocksX, ip.BlocksY)
	}
	if len(ip.InitType) == 0 {
		ip.InitType = "dambreak"
	}
	ip.OutputFormat = strings.ToLower(strings.TrimSpace(ip.OutputFormat))
	var known bool
	for _, f := range OutputFormats {
		known = known || f == ip.OutputFormat
	}
	if !known {
		return fmt.Errorf("unknown output format %q, use one of %v", ip.OutputFormat, OutputFormats[1:])
	}
	if len(ip.OutputDir) == 0 {
		ip.OutputDir = "."
	}
	for edge, params := range ip.Inflow {
		for name := range params {
			var ok bool
			for _, pn := range InflowParameterNames {
				ok = ok || strings.EqualFold(pn, name)
			}
			if !ok {
				return fmt.Errorf("unknown inflow parameter %s on edge %s, use %v", name, edge, InflowParameterNames)
			}
		}
	}
	return
}

// InflowParameter returns the named inflow parameter of edge, matched without
// regard to case, or zero when it is absent.
func (ip *InputParametersSW2D) InflowParameter(edge, name string) (val float64) {
	for pn, v := range ip.Inflow[edge] {
		if strings.EqualFold(pn, name) {
			return v
		}
	}
	return
}

func (ip *InputParametersSW2D) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%d x %d]\t\t= Cells\n", ip.NX, ip.NY)
	fmt.Printf("[%d x %d]\t\t\t= Blocks\n", ip.BlocksX, ip.BlocksY)
	fmt.Printf("%8.5f\t\t= DX\n", ip.DX)
	fmt.Printf("%8.5f\t\t= DY\n", ip.DY)
	fmt.Printf("%8.5f\t\t= FinalTime\n", ip.FinalTime)
	fmt.Printf("[%d]\t\t\t\t= Max Iterations\n", ip.MaxIterations)
	fmt.Printf("[%s]\t\t= InitType\n", ip.InitType)
	fmt.Printf("%8.5f\t\t= Gravity\n", ip.Gravity)
	fmt.Printf("%8.5f\t\t= Dry Tolerance\n", ip.DryTolerance)
	keys := make([]string, len(ip.BCs))
	i := 0
	for k := range ip.BCs {
		keys[i] = k
		i++
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Printf("BCs[%s] = %v\n", key, ip.BCs[key])
	}
	keys = keys[:0]
	for k := range ip.Inflow {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Printf("Inflow[%s] = %v\n", key, ip.Inflow[key])
	}
}
