package entity

// Tipos de alerta derivados del estado actual de productos y stock.
const (
	AlertNearExpiry = "near_expiry"
	AlertLowStock   = "low_stock"
	AlertExpired    = "expired"
)

// ProductAlert un producto clasificado en una categoría de alerta, con el
// stock efectivo calculado al momento de la evaluación.
type ProductAlert struct {
	Product        *Product
	EffectiveStock int64
	DaysToExpiry   int // solo relevante para near_expiry / expired
}

// AlertReport resultado de una evaluación de alertas. Un producto puede
// aparecer en LowStock y NearExpiry a la vez; Expired excluye NearExpiry.
type AlertReport struct {
	NearExpiry []ProductAlert
	LowStock   []ProductAlert
	Expired    []ProductAlert
}
