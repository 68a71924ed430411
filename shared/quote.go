package shared

// Quote represents a point-in-time market quote for a ticker together with
// the intraday close history backing its sparkline.
type Quote struct {
	Price     float64
	PrevClose float64
	Open      float64
	High      float64
	Low       float64
	Volume    float64
	History   []float64
}

// Change returns the price change relative to the previous close.
func (q *Quote) Change() float64 {
	return q.Price - q.PrevClose
}

// ChangePercent returns the percentage price change relative to the previous close.
func (q *Quote) ChangePercent() float64 {
	if q.PrevClose == 0 {
		return 0
	}

	return (q.Change() / q.PrevClose) * 100
}

// Bullish reports whether the quote is at or above its previous close.
func (q *Quote) Bullish() bool {
	return q.Change() >= 0
}

// DeriveOHLCV fills in open, high, low and volume from the provided history
// arrays. It is the fallback tier of the quote contract, used when the rich
// summary fields are unavailable upstream.
func (q *Quote) DeriveOHLCV(open []float64, high []float64, low []float64, volume []float64) {
	if len(open) > 0 {
		q.Open = open[len(open)-1]
	}

	if len(high) > 0 {
		q.High = high[0]
		for idx := range high {
			if high[idx] > q.High {
				q.High = high[idx]
			}
		}
	}

	if len(low) > 0 {
		q.Low = low[0]
		for idx := range low {
			if low[idx] < q.Low {
				q.Low = low[idx]
			}
		}
	}

	for idx := range volume {
		q.Volume += volume[idx]
	}
}
