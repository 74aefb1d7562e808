package progression

import "dojo_path/internal/model"

const (
	RankAmateur    = "Amateur"
	RankContender  = "Contender"
	RankChallenger = "Challenger"
	RankElite      = "Elite"
	RankChampion   = "Champion"
)

type tier struct {
	name  string
	floor int
}

// 昇順のしきい値テーブル。最上位は上限なし。
var tiers = []tier{
	{RankAmateur, 0},
	{RankContender, 200},
	{RankChallenger, 500},
	{RankElite, 1000},
	{RankChampion, 2000},
}

func tierIndex(power int) int {
	idx := 0
	for i, t := range tiers {
		if power >= t.floor {
			idx = i
		}
	}
	return idx
}

// RankFor はパワーレベルからランク名を求めます
func RankFor(power int) string {
	return tiers[tierIndex(power)].name
}

// ProgressToNext は現在のランクの下限から次のしきい値までの進捗率を計算します。
// Champion 以上は 100%。
func ProgressToNext(power int) model.RankProgress {
	idx := tierIndex(power)
	rp := model.RankProgress{
		Rank:       tiers[idx].name,
		PowerLevel: power,
	}
	if idx == len(tiers)-1 {
		rp.Percent = 100
		return rp
	}
	floor := tiers[idx].floor
	next := tiers[idx+1]
	current := power
	if current < floor {
		current = floor
	}
	rp.NextRank = next.name
	rp.Required = next.floor
	rp.XPRemaining = next.floor - current
	rp.Percent = float64(current-floor) / float64(next.floor-floor) * 100
	return rp
}

// ApplyXP は報酬を加算した新しいパワーレベルとランク遷移を返します
func ApplyXP(power, reward int) (newPower int, previousRank, newRank string, changed bool) {
	if reward < 0 {
		reward = 0
	}
	previousRank = RankFor(power)
	newPower = power + reward
	newRank = RankFor(newPower)
	return newPower, previousRank, newRank, previousRank != newRank
}
