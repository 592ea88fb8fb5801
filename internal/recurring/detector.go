package recurring

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"jlowell/ledgersum/internal/dateutils"
	"jlowell/ledgersum/internal/logging"
	"jlowell/ledgersum/internal/models"
)

// Options control one detector run.
type Options struct {
	// WindowDays limits eligible transactions to the trailing window.
	// Zero means all history.
	WindowDays int

	// HorizonDays bounds the upcoming-occurrence projection.
	HorizonDays int

	// MinOccurrences is the default sighting count required to form a
	// stream. Income-looking groups and allow-single vendors bypass it.
	MinOccurrences int

	// Now anchors the window, projection, and missed checks. Zero value
	// means time.Now.
	Now time.Time
}

// Detector finds repeating charges and deposits in the monthly summaries.
type Detector struct {
	rules  Rules
	logger logging.Logger
}

// NewDetector creates a Detector with the given rules.
func NewDetector(rules Rules, logger logging.Logger) *Detector {
	return &Detector{rules: rules, logger: logger}
}

// candidate is one eligible transaction, annotated with its merchant keys.
type candidate struct {
	Date         time.Time
	Description  string
	Amount       decimal.Decimal
	Category     string
	Subcategory  string
	MerchantNorm string
	MerchantKey  string
}

// stream pairs the reportable stream with its projection interval.
type stream struct {
	models.RecurringStream
	step    cadenceStep
	nextDue time.Time
}

// Detect runs the full analysis: gather eligible transactions, cluster them
// into streams per vendor, project upcoming occurrences, and compute the
// monthly floor and expected-income aggregates.
func (d *Detector) Detect(summaries map[string]*models.MonthlySummary, opts Options) models.RecurringReport {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	var cutoff time.Time
	if opts.WindowDays > 0 {
		cutoff = today.AddDate(0, 0, -opts.WindowDays)
	}
	minOcc := opts.MinOccurrences
	if minOcc <= 0 {
		minOcc = 2
	}

	idx := newVendorIndex(d.rules)
	flat := d.gather(summaries, idx, cutoff)

	byMerchant := make(map[string][]candidate)
	for _, c := range flat {
		byMerchant[c.MerchantKey] = append(byMerchant[c.MerchantKey], c)
	}
	merchants := make([]string, 0, len(byMerchant))
	for m := range byMerchant {
		merchants = append(merchants, m)
	}
	sort.Strings(merchants)

	var streams []stream
	appendStream := func(merch string, rows []candidate) {
		if s, ok := d.emitStream(merch, rows, idx, today); ok {
			streams = append(streams, s)
		}
	}

	for _, merch := range merchants {
		rows := byMerchant[merch]
		priority := idx.isVendorPriority(merch)
		split := idx.isSplitByAmount(merch)

		passesGate := func(subset []candidate) bool {
			if len(subset) >= minOcc || idx.looksLikeIncome(subset, merch) {
				return true
			}
			return isSamsVendor(merch) || idx.allowsSingle(merch)
		}

		switch {
		case priority && split:
			// Split vendors carry several independent lines under one name;
			// every distinct cents amount becomes its own stream.
			buckets := make(map[int64][]candidate)
			var order []int64
			for _, r := range rows {
				cents := models.Cents(r.Amount.Abs())
				if _, seen := buckets[cents]; !seen {
					order = append(order, cents)
				}
				buckets[cents] = append(buckets[cents], r)
			}
			sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })
			for _, cents := range order {
				if subset := buckets[cents]; passesGate(subset) {
					appendStream(merch, subset)
				}
			}
		case priority:
			if passesGate(rows) {
				appendStream(merch, rows)
			}
		default:
			for _, cluster := range clusterByAmount(rows) {
				if passesGate(cluster) {
					appendStream(merch, cluster)
				}
			}
		}
	}

	sort.SliceStable(streams, func(i, j int) bool {
		if !streams[i].Total.Equal(streams[j].Total) {
			return streams[i].Total.GreaterThan(streams[j].Total)
		}
		return streams[i].Count > streams[j].Count
	})

	report := models.RecurringReport{
		FloorByCategory: make(map[string]decimal.Decimal),
	}
	for _, s := range streams {
		report.Streams = append(report.Streams, s.RecurringStream)
	}
	report.Upcoming = projectUpcoming(streams, today, opts.HorizonDays)

	floorTotal := decimal.Zero
	incomeRecurring := decimal.Zero
	for _, s := range streams {
		monthlyEquiv := s.Amount.Mul(models.MonthlyEquivalentRatio(s.Freq))
		if s.IsIncome {
			incomeRecurring = incomeRecurring.Add(monthlyEquiv)
			continue
		}
		floorTotal = floorTotal.Add(monthlyEquiv)
		topCat := "Other"
		if len(s.Categories) > 0 && s.Categories[0] != "" {
			topCat = s.Categories[0]
		}
		report.FloorByCategory[topCat] = report.FloorByCategory[topCat].Add(monthlyEquiv)
	}
	report.FloorTotal = models.RoundCents(floorTotal)
	report.IncomeRecurring = models.RoundCents(incomeRecurring)
	for cat, total := range report.FloorByCategory {
		report.FloorByCategory[cat] = models.RoundCents(total)
	}

	weekly, weeksUsed := d.variableIncomeWeekly(summaries, today)
	report.VariableIncomeMonthly = models.RoundCents(weekly.Mul(weeksPerMonth))
	report.IncomeExpected = models.RoundCents(report.IncomeRecurring.Add(report.VariableIncomeMonthly))
	report.Leftover = models.RoundCents(report.IncomeExpected.Sub(report.FloorTotal))

	d.logger.Info("Recurring detection complete",
		logging.Field{Key: logging.FieldCount, Value: len(report.Streams)},
		logging.Field{Key: "weeks_used", Value: weeksUsed})
	return report
}

// gather flattens eligible transactions out of every month's category tree.
func (d *Detector) gather(summaries map[string]*models.MonthlySummary, idx *vendorIndex, cutoff time.Time) []candidate {
	months := make([]string, 0, len(summaries))
	for m := range summaries {
		months = append(months, m)
	}
	sort.Strings(months)

	var flat []candidate
	for _, month := range months {
		for _, top := range summaries[month].Tree {
			for _, tx := range top.SubtreeTransactions() {
				if !cutoff.IsZero() && tx.Date.Before(cutoff) {
					continue
				}
				category := tx.Category
				if category == "" {
					category = top.Name
				}
				if !idx.allowTx(category, tx.Subcategory, tx.Description) {
					continue
				}
				norm := normMerchant(tx.Description)
				flat = append(flat, candidate{
					Date:         tx.Date,
					Description:  tx.Description,
					Amount:       tx.Amount,
					Category:     category,
					Subcategory:  tx.Subcategory,
					MerchantNorm: norm,
					MerchantKey:  idx.canonicalVendorKey(tx.Description, norm),
				})
			}
		}
	}
	return flat
}

// clusterByAmount greedily groups rows whose absolute amounts sit within $3
// or 5% of the cluster median, whichever is larger. Non-priority merchants
// only form streams out of amount-stable clusters.
func clusterByAmount(rows []candidate) [][]candidate {
	three := decimal.NewFromInt(3)
	five := decimal.NewFromFloat(0.05)
	one := decimal.NewFromInt(1)

	var clusters [][]candidate
	for _, r := range rows {
		a := r.Amount.Abs()
		placed := false
		for i, cl := range clusters {
			amts := make([]decimal.Decimal, len(cl))
			for j, x := range cl {
				amts[j] = x.Amount.Abs()
			}
			m := medianDecimals(amts)
			tol := decimal.Max(three, five.Mul(decimal.Max(m, a, one)))
			if a.Sub(m).Abs().LessThanOrEqual(tol) {
				clusters[i] = append(cl, r)
				placed = true
				break
			}
		}
		if !placed {
			clusters = append(clusters, []candidate{r})
		}
	}
	return clusters
}

// emitStream builds one stream from a merchant's rows: infer cadence from the
// median gap, pick the representative amount, and schedule the next due date.
func (d *Detector) emitStream(merch string, rows []candidate, idx *vendorIndex, today time.Time) (stream, bool) {
	if len(rows) == 0 {
		return stream{}, false
	}

	dates := make([]time.Time, 0, len(rows))
	for _, r := range rows {
		dates = append(dates, r.Date)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].After(dates[j]) })

	var freq string
	if len(dates) >= 2 {
		intervals := make([]int, 0, len(dates)-1)
		for i := 0; i+1 < len(dates); i++ {
			intervals = append(intervals, dateutils.DaysBetween(dates[i+1], dates[i]))
		}
		var ok bool
		freq, ok = cadenceFromDays(medianInts(intervals))
		if !ok {
			freq = models.FreqMonthly
		}
	} else if isSamsVendor(merch) {
		freq = models.FreqAnnual
	} else {
		freq = models.FreqMonthly
	}
	if forceMonthlyVendor(merch) {
		freq = models.FreqMonthly
	}

	if freq == models.FreqBiweekly {
		perMonth := make(map[string]int)
		for _, r := range rows {
			perMonth[r.Date.Format(dateutils.DateLayoutMonthOnly)]++
		}
		limit := idx.biweeklyCapFor(merch, rows) + 2
		for _, n := range perMonth {
			// More charges in one month than biweekly allows means the
			// cadence read is noise from clustered purchases.
			if n >= limit {
				freq = models.FreqMonthly
				break
			}
		}
	}

	amts := make([]decimal.Decimal, len(rows))
	total := decimal.Zero
	for i, r := range rows {
		amts[i] = r.Amount.Abs()
		total = total.Add(amts[i])
	}
	repAmount := models.RoundCents(medianDecimals(amts))

	catSet := make(map[string]bool)
	for _, r := range rows {
		if c := r.Category; c != "" {
			catSet[c] = true
		}
	}
	cats := make([]string, 0, len(catSet))
	for c := range catSet {
		cats = append(cats, c)
	}
	sort.Strings(cats)
	if len(cats) > 4 {
		cats = cats[:4]
	}

	norms := make([]string, 0, len(rows))
	for _, r := range rows {
		if r.MerchantNorm != "" {
			norms = append(norms, r.MerchantNorm)
		}
	}

	first := dates[len(dates)-1]
	last := dates[0]
	step := stepForFreq(freq)
	nextDue := step.next(last)

	s := stream{
		RecurringStream: models.RecurringStream{
			Merchant:   d.labelFor(merch, repAmount, norms),
			Amount:     repAmount,
			Count:      len(rows),
			Total:      models.RoundCents(total),
			Categories: cats,
			First:      dateutils.ToISODate(first),
			Last:       dateutils.ToISODate(last),
			Next:       dateutils.ToISODate(nextDue),
			Freq:       freq,
			IsIncome:   idx.looksLikeIncome(rows, merch),
			Missed:     nextDue.Before(today.AddDate(0, 0, -d.rules.GraceDays)),
		},
		step:    step,
		nextDue: nextDue,
	}
	return s, true
}

// labelFor picks the display name for a stream: an amount-specific label when
// one matches, otherwise the most common normalized merchant name.
func (d *Detector) labelFor(merch string, repAmount decimal.Decimal, norms []string) string {
	merchUp := cmpKey(merch)
	cents := models.Cents(repAmount)
	for _, rule := range d.rules.AmountLabels {
		if !containsCmp(merchUp, rule.MerchantContains) {
			continue
		}
		if models.Cents(rule.Amount) == cents {
			return rule.Label
		}
	}
	if len(norms) > 0 {
		counts := make(map[string]int)
		for _, n := range norms {
			counts[n]++
		}
		best := norms[0]
		for _, n := range norms {
			if counts[n] > counts[best] {
				best = n
			}
		}
		return best
	}
	if merch == "" {
		return "(unknown)"
	}
	return merch
}

func containsCmp(haystackCmp, needle string) bool {
	n := cmpKey(needle)
	return n != "" && strings.Contains(haystackCmp, n)
}

// projectUpcoming steps each stream forward from its next due date until the
// horizon, collecting every occurrence on or after today.
func projectUpcoming(streams []stream, today time.Time, horizonDays int) []models.Occurrence {
	horizonEnd := today.AddDate(0, 0, horizonDays)
	var upcoming []models.Occurrence
	for _, s := range streams {
		cur := s.nextDue
		for !cur.After(horizonEnd) {
			if !cur.Before(today) {
				upcoming = append(upcoming, models.Occurrence{
					Date:     dateutils.ToISODate(cur),
					Merchant: s.Merchant,
					Amount:   s.Amount,
					IsIncome: s.IsIncome,
				})
			}
			cur = s.step.next(cur)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool { return upcoming[i].Date < upcoming[j].Date })
	return upcoming
}
