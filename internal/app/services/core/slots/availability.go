package slots

import "beauty-clinic-service/internal/app/models"

// ComputeAvailableSlots returns the template labels that are neither booked nor
// closed, keeping template order. Labels outside the template are ignored.
func ComputeAvailableSlots(template, booked, closed []string) []string {
	taken := make(map[string]struct{}, len(booked)+len(closed))
	for _, label := range booked {
		taken[label] = struct{}{}
	}
	for _, label := range closed {
		taken[label] = struct{}{}
	}

	available := make([]string, 0, len(template))
	for _, label := range template {
		if _, ok := taken[label]; ok {
			continue
		}
		available = append(available, label)
	}
	return available
}

// BookedTimes collects the time of every appointment on date whose status is
// not excluded.
func BookedTimes(appointments []models.Appointment, date string, excludeStatuses []string) []string {
	excluded := make(map[string]struct{}, len(excludeStatuses))
	for _, status := range excludeStatuses {
		excluded[status] = struct{}{}
	}

	booked := make([]string, 0, len(appointments))
	for _, appointment := range appointments {
		if appointment.Date != date {
			continue
		}
		if _, ok := excluded[appointment.Status]; ok {
			continue
		}
		booked = append(booked, appointment.Time)
	}
	return booked
}

func dedupeLabels(labels []string) []string {
	seen := make(map[string]struct{}, len(labels))
	result := make([]string, 0, len(labels))
	for _, label := range labels {
		if _, ok := seen[label]; ok {
			continue
		}
		seen[label] = struct{}{}
		result = append(result, label)
	}
	return result
}
