package weather

import (
	"sort"
	"strings"
)

// District is the approximate center of a Bangladesh district.
type District struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// DefaultDistrict is used when a district name is unknown.
const DefaultDistrict = "Dhaka"

var districts = map[string]District{
	// Dhaka division
	"Dhaka":       {"Dhaka", 23.8103, 90.4125},
	"Gazipur":     {"Gazipur", 23.9999, 90.4203},
	"Narayanganj": {"Narayanganj", 23.6238, 90.4964},
	"Tangail":     {"Tangail", 24.2513, 89.9167},
	"Munshiganj":  {"Munshiganj", 23.5434, 90.5354},
	// Chittagong division
	"Chittagong":  {"Chittagong", 22.3569, 91.7832},
	"Cox's Bazar": {"Cox's Bazar", 21.4437, 91.9702},
	"Comilla":     {"Comilla", 23.4607, 91.1819},
	"Feni":        {"Feni", 23.0159, 91.3976},
	"Noakhali":    {"Noakhali", 22.8696, 91.0968},
	// Rajshahi division
	"Rajshahi":  {"Rajshahi", 24.3745, 88.6042},
	"Bogra":     {"Bogra", 24.8510, 89.3711},
	"Pabna":     {"Pabna", 24.0044, 89.2379},
	"Sirajganj": {"Sirajganj", 24.4577, 89.7080},
	// Khulna division
	"Khulna":   {"Khulna", 22.8098, 89.5644},
	"Jessore":  {"Jessore", 23.1697, 89.2137},
	"Satkhira": {"Satkhira", 22.7161, 89.0680},
	"Bagerhat": {"Bagerhat", 22.6516, 89.7853},
	// Sylhet division
	"Sylhet":      {"Sylhet", 24.8949, 91.8687},
	"Moulvibazar": {"Moulvibazar", 24.4829, 91.7774},
	"Habiganj":    {"Habiganj", 24.3750, 91.4167},
	// Barisal division
	"Barisal":    {"Barisal", 22.7010, 90.3535},
	"Patuakhali": {"Patuakhali", 22.3567, 90.3195},
	"Bhola":      {"Bhola", 22.6875, 90.6446},
	// Rangpur division
	"Rangpur":   {"Rangpur", 25.7466, 89.2517},
	"Dinajpur":  {"Dinajpur", 25.6274, 88.6339},
	"Gaibandha": {"Gaibandha", 25.3287, 89.5281},
	// Mymensingh division
	"Mymensingh":  {"Mymensingh", 24.7471, 90.4203},
	"Netrokona":   {"Netrokona", 24.8709, 90.7274},
	"Kishoreganj": {"Kishoreganj", 24.4333, 90.7833},
}

// LookupDistrict matches exactly, then case-insensitively after trimming,
// and falls back to Dhaka.
func LookupDistrict(name string) District {
	if d, ok := districts[name]; ok {
		return d
	}
	trimmed := strings.TrimSpace(name)
	for key, d := range districts {
		if strings.EqualFold(key, trimmed) {
			return d
		}
	}
	return districts[DefaultDistrict]
}

// Districts returns every known district sorted by name.
func Districts() []District {
	out := make([]District, 0, len(districts))
	for _, d := range districts {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
