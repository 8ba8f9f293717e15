package venues_test

import (
	"github.com/theoremus-urban-solutions/venuefinder/venues"
)

// fixtureCatalog mirrors a small campus: LT1 is busy Monday afternoon,
// lt2 and LT17 on Monday mid-morning, S11-0302 all Monday morning, and
// CQT/SR0622 only on Tuesday. AS6-0333 is on the default exclusion list.
func fixtureCatalog() *venues.Catalog {
	c := venues.NewCatalog(6)
	c.Add("LT17", []venues.Block{{Day: 0, StartHour: 10, EndHour: 12}})
	c.Add("S11-0302", []venues.Block{{Day: 0, StartHour: 8, EndHour: 12}, {Day: 2, StartHour: 14, EndHour: 15}})
	c.Add("CQT/SR0622", []venues.Block{{Day: 1, StartHour: 9, EndHour: 11}})
	c.Add("lt2", []venues.Block{{Day: 0, StartHour: 10, EndHour: 11}})
	c.Add("AS6-0333", nil)
	c.Add("LT1", []venues.Block{{Day: 0, StartHour: 14, EndHour: 16}, {Day: 3, StartHour: 8, EndHour: 9}})
	return c
}

func fixtureList() venues.OrderedList {
	return venues.Sort(fixtureCatalog())
}

// pick returns the venues of list whose ids are in ids, in list order.
func pick(list venues.OrderedList, ids ...string) venues.OrderedList {
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	out := venues.OrderedList{}
	for _, v := range list {
		if want[v.ID] {
			out = append(out, v)
		}
	}
	return out
}
