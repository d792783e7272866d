package protocoldata

import (
	"fmt"
	"strings"
	"time"
)

type Metric string

const (
	MetricTVL      Metric = "tvl"
	MetricAPY      Metric = "apy"
	MetricVolume   Metric = "volume"
	MetricFees     Metric = "fees"
	MetricSecurity Metric = "security"
)

func ParseMetric(s string) (Metric, error) {
	switch Metric(s) {
	case MetricTVL, MetricAPY, MetricVolume, MetricFees, MetricSecurity:
		return Metric(s), nil
	default:
		return "", fmt.Errorf("unknown data type: %s", s)
	}
}

type Data struct {
	Protocol    string    `json:"protocol"`
	DataType    string    `json:"dataType"`
	Value       string    `json:"value"`
	Change24h   string    `json:"change24h"`
	Description string    `json:"description"`
	LastUpdated time.Time `json:"lastUpdated"`
	Source      string    `json:"source"`
}

type entry struct {
	value       string
	change24h   string
	description string
}

// Static snapshot; a live implementation would query an aggregator.
var table = map[string]map[Metric]entry{
	"uniswap": {
		MetricTVL:      {"$4.2B", "+2.3%", "Total Value Locked across all Uniswap pools"},
		MetricAPY:      {"15.2%", "-0.5%", "Average APY for liquidity providers"},
		MetricVolume:   {"$1.2B", "+8.7%", "24h trading volume"},
		MetricFees:     {"$3.6M", "+8.7%", "24h fees generated"},
		MetricSecurity: {"High", "Stable", "Security score based on audits and track record"},
	},
	"aave": {
		MetricTVL:      {"$6.8B", "+1.2%", "Total Value Locked in Aave protocol"},
		MetricAPY:      {"3.5%", "+0.1%", "Average lending APY"},
		MetricVolume:   {"$450M", "+5.2%", "24h lending/borrowing volume"},
		MetricFees:     {"$1.2M", "+5.2%", "24h protocol fees"},
		MetricSecurity: {"High", "Stable", "Security score based on audits and track record"},
	},
	"compound": {
		MetricTVL:      {"$2.1B", "-0.8%", "Total Value Locked in Compound protocol"},
		MetricAPY:      {"2.8%", "-0.2%", "Average lending APY"},
		MetricVolume:   {"$180M", "+2.1%", "24h lending/borrowing volume"},
		MetricFees:     {"$520K", "+2.1%", "24h protocol fees"},
		MetricSecurity: {"High", "Stable", "Security score based on audits and track record"},
	},
}

// Fetch looks up one metric for a protocol. Unknown protocols or metrics
// are errors; the dispatcher turns them into failure envelopes.
func Fetch(protocol string, metric Metric) (Data, error) {
	metrics, ok := table[strings.ToLower(protocol)]
	if !ok {
		return Data{}, fmt.Errorf("protocol %s not found", protocol)
	}
	e, ok := metrics[metric]
	if !ok {
		return Data{}, fmt.Errorf("data type %s not available for %s", metric, protocol)
	}
	return Data{
		Protocol:    strings.ToUpper(protocol),
		DataType:    string(metric),
		Value:       e.value,
		Change24h:   e.change24h,
		Description: e.description,
		LastUpdated: time.Now().UTC(),
		Source:      "Mock Data (DeFi Llama in production)",
	}, nil
}

// Render produces the display text for a data point.
func (d Data) Render() string {
	changeIcon := "➡️"
	if strings.HasPrefix(d.Change24h, "+") {
		changeIcon = "📈"
	} else if strings.HasPrefix(d.Change24h, "-") {
		changeIcon = "📉"
	}
	return fmt.Sprintf(`## %s - %s Data

**Current Value:** %s
**24h Change:** %s %s
**Last Updated:** %s
**Source:** %s

%s`,
		d.Protocol, strings.ToUpper(d.DataType),
		d.Value,
		d.Change24h, changeIcon,
		d.LastUpdated.Format(time.RFC1123),
		d.Source,
		d.Description)
}
