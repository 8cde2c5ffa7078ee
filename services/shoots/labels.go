package shoots

import (
	"strings"
	"unicode"
)

var statusLabels = map[string]string{
	"requested":   "Requested",
	"scheduled":   "Scheduled",
	"booked":      "Scheduled",
	"uploaded":    "Uploaded",
	"editing":     "Editing",
	"review":      "In Review",
	"in_review":   "In Review",
	"delivered":   "Delivered",
	"completed":   "Completed",
	"on_hold":     "On Hold",
	"hold":        "On Hold",
	"declined":    "Declined",
	"canceled":    "Canceled",
	"cancelled":   "Canceled",
	"in_progress": "In Progress",
}

var statusTones = map[string]string{
	"requested": "amber",
	"scheduled": "blue",
	"booked":    "blue",
	"uploaded":  "indigo",
	"editing":   "purple",
	"review":    "purple",
	"in_review": "purple",
	"delivered": "green",
	"completed": "green",
	"on_hold":   "orange",
	"hold":      "orange",
	"declined":  "red",
	"canceled":  "red",
	"cancelled": "red",
}

// serviceWords overrides the casing of words that appear in service tags.
var serviceWords = map[string]string{
	"hdr":        "HDR",
	"mls":        "MLS",
	"3d":         "3D",
	"2d":         "2D",
	"360":        "360°",
	"iguide":     "iGuide",
	"uav":        "UAV",
	"vr":         "VR",
	"diy":        "DIY",
	"matterport": "Matterport",
	"and":        "&",
}

func statusKey(status string) string {
	s := strings.ToLower(strings.TrimSpace(status))
	return strings.NewReplacer("-", "_", " ", "_").Replace(s)
}

// StatusLabel renders a workflow status for display.
func StatusLabel(status string) string {
	key := statusKey(status)
	if l, ok := statusLabels[key]; ok {
		return l
	}
	if key == "" {
		return "Unknown"
	}
	return titleWords(strings.Split(key, "_"), nil)
}

// StatusTone is the single status-to-color mapping used by every shoot card.
func StatusTone(status string) string {
	if t, ok := statusTones[statusKey(status)]; ok {
		return t
	}
	return "gray"
}

// NormalizeService folds a service tag or label into a comparable key.
func NormalizeService(tag string) string {
	f := strings.FieldsFunc(strings.ToLower(tag), func(r rune) bool {
		return r == '_' || r == '-' || unicode.IsSpace(r)
	})
	return strings.Join(f, " ")
}

// ServiceLabel renders a service tag such as "hdr_photos" as "HDR Photos".
func ServiceLabel(tag string) string {
	words := strings.Fields(NormalizeService(tag))
	if len(words) == 0 {
		return ""
	}
	return titleWords(words, serviceWords)
}

func titleWords(words []string, overrides map[string]string) string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if w == "" {
			continue
		}
		if o, ok := overrides[w]; ok {
			out = append(out, o)
			continue
		}
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		out = append(out, string(r))
	}
	return strings.Join(out, " ")
}
