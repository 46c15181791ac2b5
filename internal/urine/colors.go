package urine

type Category string

const (
	CategoryOptimal  Category = "optimal"
	CategoryGood     Category = "good"
	CategoryWarning  Category = "warning"
	CategoryCritical Category = "critical"
)

type ColorInfo struct {
	Scale    int      `json:"scale"`
	Color    string   `json:"color"`
	Label    string   `json:"label"`
	Category Category `json:"category"`
	XP       int      `json:"xp"`
}

type CategoryInfo struct {
	Category   Category `json:"category"`
	Label      string   `json:"label"`
	BadgeColor string   `json:"badgeColor"`
	ScaleRange string   `json:"scaleRange"`
}

// Colors maps the 8-point scale to display color, label, category and base XP.
var Colors = []ColorInfo{
	{Scale: 1, Color: "#FFFDD8", Label: "Clear", Category: CategoryOptimal, XP: 10},
	{Scale: 2, Color: "#FFFBA8", Label: "Pale Straw", Category: CategoryOptimal, XP: 10},
	{Scale: 3, Color: "#FCE974", Label: "Straw", Category: CategoryGood, XP: 5},
	{Scale: 4, Color: "#FFCE79", Label: "Light Yellow", Category: CategoryGood, XP: 5},
	{Scale: 5, Color: "#FFBA00", Label: "Yellow", Category: CategoryWarning, XP: 2},
	{Scale: 6, Color: "#EAC853", Label: "Amber", Category: CategoryWarning, XP: 2},
	{Scale: 7, Color: "#E1C161", Label: "Dark Amber", Category: CategoryCritical, XP: 2},
	{Scale: 8, Color: "#898253", Label: "Tea Colored", Category: CategoryCritical, XP: 2},
}

var Categories = []CategoryInfo{
	{Category: CategoryOptimal, Label: "OPTIMAL HYDRATION!", BadgeColor: "#4CAF50", ScaleRange: "1-2"},
	{Category: CategoryGood, Label: "MINIMAL DEHYDRATION", BadgeColor: "#2196F3", ScaleRange: "3-4"},
	{Category: CategoryWarning, Label: "SIGNIFICANT DEHYDRATION", BadgeColor: "#FF9800", ScaleRange: "5-6"},
	{Category: CategoryCritical, Label: "SEVERE DEHYDRATION", BadgeColor: "#E53935", ScaleRange: "7-8"},
}

// CategoryForScale buckets a scale value into its severity category.
func CategoryForScale(scale int) CategoryInfo {
	switch {
	case scale <= 2:
		return Categories[0]
	case scale <= 4:
		return Categories[1]
	case scale <= 6:
		return Categories[2]
	default:
		return Categories[3]
	}
}

// XPForScale returns the base XP awarded for logging the given color.
func XPForScale(scale int) int {
	for _, c := range Colors {
		if c.Scale == scale {
			return c.XP
		}
	}
	return 2
}

func ColorForScale(scale int) string {
	for _, c := range Colors {
		if c.Scale == scale {
			return c.Color
		}
	}
	return "#E0E0E0"
}
