package models

// WebhookPayload is the parsed invalidation event body. Only the slug is
// acted on; everything else rides along for logging.
type WebhookPayload struct {
	ID   int    `json:"id,omitempty"`
	Slug string `json:"slug,omitempty"`
	Name string `json:"name,omitempty"`
}

type HealthService struct {
	OK        bool  `json:"ok"`
	LatencyMs int64 `json:"latencyMs,omitempty"`
}

type HealthMemory struct {
	Used  string `json:"used"`
	Total string `json:"total"`
}

type HealthReport struct {
	Status    string       `json:"status"`
	Timestamp string       `json:"timestamp"`
	Uptime    float64      `json:"uptime"`
	Memory    HealthMemory `json:"memory"`
	Services  struct {
		Redis       HealthService `json:"redis"`
		WooCommerce HealthService `json:"woocommerce"`
	} `json:"services"`
}
