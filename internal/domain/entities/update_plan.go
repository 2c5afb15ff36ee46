package entities

import (
	"strings"

	"golang.org/x/mod/semver"
)

// ScanStatus is the outcome of comparing one local entry against the upstream inventory.
type ScanStatus string

const (
	StatusUpdateNeeded ScanStatus = "update-needed"
	StatusUpToDate     ScanStatus = "up-to-date"
	StatusUnresolved   ScanStatus = "unresolved"
	StatusNotUpstream  ScanStatus = "not-upstream"
)

// ScanResult pairs a local entry with its scan outcome.
type ScanResult struct {
	Entry           DependencyEntry
	Status          ScanStatus
	UpstreamVersion string
}

// DependencyUpdate is a single version rewrite to apply.
type DependencyUpdate struct {
	Entry         DependencyEntry
	TargetVersion string
}

// Direction classifies the update for display only. The decision to update is
// always exact string inequality, so "1.2" -> "1.2.0" is reported as "change".
func (u DependencyUpdate) Direction() string {
	current := normalizeVersion(u.Entry.Version)
	target := normalizeVersion(u.TargetVersion)
	if !semver.IsValid(current) || !semver.IsValid(target) {
		return "change"
	}
	switch semver.Compare(target, current) {
	case 1:
		return "upgrade"
	case -1:
		return "downgrade"
	default:
		return "change"
	}
}

// UpdatePlan is the set of rewrites computed by one scan.
type UpdatePlan struct {
	Results []ScanResult
	Updates []DependencyUpdate
}

// Unresolved returns the entries matched upstream whose version could not be located.
func (p UpdatePlan) Unresolved() []DependencyEntry {
	var result []DependencyEntry
	for _, r := range p.Results {
		if r.Status == StatusUnresolved {
			result = append(result, r.Entry)
		}
	}
	return result
}

// IsEmpty reports whether nothing needs to be rewritten.
func (p UpdatePlan) IsEmpty() bool { return len(p.Updates) == 0 }

// PlanUpdates compares every local entry with the upstream inventory.
// Entries whose lookup key is unknown upstream are classified as
// StatusNotUpstream and never touched. Versions are compared as plain strings.
func PlanUpdates(entries []DependencyEntry, inventory *Inventory) UpdatePlan {
	plan := UpdatePlan{Results: make([]ScanResult, 0, len(entries))}

	for _, entry := range entries {
		upstream, ok := inventory.Lookup(entry.LookupKey())
		if !ok {
			plan.Results = append(plan.Results, ScanResult{Entry: entry, Status: StatusNotUpstream})
			continue
		}

		result := ScanResult{Entry: entry, UpstreamVersion: upstream}
		switch {
		case entry.Shape == ShapeUnknown:
			result.Status = StatusUnresolved
		case entry.Version == upstream:
			result.Status = StatusUpToDate
		default:
			result.Status = StatusUpdateNeeded
			plan.Updates = append(plan.Updates, DependencyUpdate{Entry: entry, TargetVersion: upstream})
		}
		plan.Results = append(plan.Results, result)
	}

	return plan
}

// normalizeVersion ensures version has 'v' prefix for semver compatibility
func normalizeVersion(version string) string {
	version = strings.TrimSpace(version)
	if strings.HasPrefix(version, "v") {
		return version
	}
	return "v" + version
}
