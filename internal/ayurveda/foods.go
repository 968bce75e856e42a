package ayurveda

import "strings"

// Foods is the closed vocabulary of approved items for one dosha, grouped by
// meal-slot category. Generated plans must use these items verbatim.
type Foods struct {
	Breakfast  []string `json:"breakfast"`
	Fruits     []string `json:"fruits"`
	Grains     []string `json:"grains"`
	Vegetables []string `json:"vegetables"`
	Legumes    []string `json:"legumes"`
	Drinks     []string `json:"drinks,omitempty"`
	Additions  []string `json:"additions,omitempty"`
}

// Approved foods for each dosha type based on Ayurvedic diabetes meal plans.
var ApprovedKaphajFoods = Foods{
	Breakfast: []string{
		"Moong dal chila with ginger tea",
		"Besan chila with coriander chutney",
		"Light poha with peas",
		"Oats chilla",
		"Ragi upma with coriander chutney",
		"Moong dal dosa with methi chutney",
		"Daliya",
		"Scrambled eggs with black pepper",
	},
	Fruits:     []string{"Apple", "Papaya", "Orange", "Guava", "Pomegranate", "Sweet lime", "Jamun"},
	Grains:     []string{"Barley roti", "Bajra roti", "Jowar roti", "Ragi rotis", "Old red rice"},
	Vegetables: []string{"Ridge gourd (tori/turai)", "Bottle gourd (lauki)", "Bitter gourd (karela)", "Lauki", "Ash gourd", "Spinach", "Tindora (ivy gourd)"},
	Legumes:    []string{"Moong dal", "Masoor dal", "Black gram dal", "Toor dal", "Sprouted lentil salad", "Rajma"},
	Drinks:     []string{"Ginger tea", "Amla juice", "Gudmar tea", "Ginger cinnamon tea", "Nuts (almonds walnuts)"},
}

var ApprovedPittajFoods = Foods{
	Breakfast: []string{
		"Poha with coriander",
		"Masala oats",
		"Ragi prantha with ghee",
		"Lauki prantha",
		"Oats chilla with coriander chutney",
		"Ragi daliya with raisins",
	},
	Fruits:     []string{"Papaya", "Grapes", "Guava", "Watermelon", "Pomegranate", "Apple", "Sweet lime slices"},
	Grains:     []string{"Brown rice", "Red rice", "Ragi chapati", "Rotis", "Chapatis", "Barley khichdi"},
	Vegetables: []string{"Ridge gourd (tori)", "Ivy gourd", "Ash gourd", "Ashgourd curry", "Pumpkin", "Bottle gourd", "Snake gourd", "Spinach"},
	Legumes:    []string{"Moong dal", "Chana dal", "Masoor dal", "Toor dal", "Horse gram soup", "Urad dal"},
	Drinks:     []string{"Coconut water", "Sweet lime juice", "Amla juice", "Fennel seed tea"},
	Additions:  []string{"Ghee with rotis"},
}

var ApprovedVataajaFoods = Foods{
	Breakfast: []string{
		"Warm daliya with ghee",
		"Poha with cumin",
		"Ragi chilla",
		"Oats chilla",
		"Ragi upma with ghee",
	},
	Fruits:     []string{"Apple", "Dates", "Pomegranate", "Guava", "Black grapes (soaked)", "Jamun"},
	Grains:     []string{"Wheat chapati", "Brown rice", "Jowar roti", "Makai roti", "Bajra roti", "Rice", "Foxtail millets"},
	Vegetables: []string{"Bottle gourd (lauki)", "Ridge gourd", "Pumpkin", "Lauki", "Lauki curry", "Lauki leaves curry", "Ash gourd", "Spinach", "Ivy gourd", "Spinach curry (sabji)"},
	Legumes:    []string{"Moong dal", "Masoor dal", "Chana dal", "Urad dal (soft)", "Toor dal", "Moong dal khichdi"},
	Additions:  []string{"Ghee", "Warm milk", "Warm milk with nutmeg", "Warm ginger tea", "Turmeric milk", "Herbal tea", "Ginger tea", "Nutmeg", "Fox nuts (makhana)"},
}

// ApprovedFoods resolves a dosha label (possibly compound, e.g. "Vata-Pitta"
// or "Kaphaj") to its food record. Matching is case-insensitive substring
// against the three canonical buckets; unrecognized labels return nil and
// callers must fall back or reject.
func ApprovedFoods(doshaType string) *Foods {
	lower := strings.ToLower(doshaType)

	switch {
	case strings.Contains(lower, "kapha") || strings.Contains(lower, "kaphaj"):
		f := ApprovedKaphajFoods
		return &f
	case strings.Contains(lower, "pitta") || strings.Contains(lower, "pittaj"):
		f := ApprovedPittajFoods
		return &f
	case strings.Contains(lower, "vata") || strings.Contains(lower, "vataja") || strings.Contains(lower, "vataaja"):
		f := ApprovedVataajaFoods
		return &f
	}

	return nil
}

// Items flattens the record into the closed vocabulary list used by the
// post-generation validator.
func (f *Foods) Items() []string {
	var items []string
	items = append(items, f.Breakfast...)
	items = append(items, f.Fruits...)
	items = append(items, f.Grains...)
	items = append(items, f.Vegetables...)
	items = append(items, f.Legumes...)
	items = append(items, f.Drinks...)
	items = append(items, f.Additions...)
	return items
}

// ContainsApproved reports whether s mentions at least one approved item,
// case-insensitively.
func (f *Foods) ContainsApproved(s string) bool {
	lower := strings.ToLower(s)
	for _, item := range f.Items() {
		if strings.Contains(lower, strings.ToLower(item)) {
			return true
		}
	}
	return false
}
