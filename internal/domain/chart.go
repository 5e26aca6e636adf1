package domain

// ChartKind indica a visualização sugerida para os dados de um gráfico
type ChartKind string

const (
	ChartBar      ChartKind = "bar"
	ChartDonut    ChartKind = "donut"
	ChartPie      ChartKind = "pie"
	ChartLine     ChartKind = "line"
	ChartTreemap  ChartKind = "treemap"
	ChartSunburst ChartKind = "sunburst"
	ChartBubble   ChartKind = "bubble"
)

// Chart são os dados de um único gráfico do painel.
// Data é []GroupTotal, []GroupShare, *TreeNode ou []ScatterPoint, conforme Kind.
type Chart struct {
	Name       string      `json:"name"`
	Title      string      `json:"title"`
	Kind       ChartKind   `json:"kind"`
	DatasetID  string      `json:"dataset_id"`
	Selections Selections  `json:"selections"`
	Data       interface{} `json:"data"`
}
