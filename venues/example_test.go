package venues_test

import (
	"fmt"

	"github.com/theoremus-urban-solutions/venuefinder/venues"
)

func ExampleSort() {
	c := venues.NewCatalog(4)
	c.Add("LT17", nil)
	c.Add("lt2", nil)
	c.Add("CQT/SR0622", nil)
	c.Add("LT1", nil)

	fmt.Println(venues.Sort(c).IDs())
	// Output: [CQT/SR0622 LT1 lt2 LT17]
}

func ExampleSearch() {
	c := venues.NewCatalog(3)
	c.Add("LT17", nil)
	c.Add("CQT/SR0622", nil)
	c.Add("AS2-0201", nil)
	list := venues.Sort(c)

	aliases := venues.AliasMap{"AS2-0201": {"Gamelan Instrument Room (Studio)"}}
	fmt.Println(venues.Search(list, "lt 17", nil).IDs())
	fmt.Println(venues.Search(list, "qt sr", nil).IDs())
	fmt.Println(venues.Search(list, "gamelan", aliases).IDs())
	// Output:
	// [LT17]
	// [CQT/SR0622]
	// [AS2-0201]
}

func ExampleFilter_Available() {
	c := venues.NewCatalog(2)
	c.Add("LT1", []venues.Block{{Day: 0, StartHour: 9, EndHour: 11}})
	c.Add("LT2", nil)

	f := venues.NewFilter(nil)
	w := venues.ClampClassDuration(venues.Window{Day: 0, Time: 10, Duration: 2})
	fmt.Println(f.Available(venues.Sort(c), w).IDs())
	// Output: [LT2]
}

func ExampleFloorName() {
	fmt.Println(venues.FloorName(venues.Level(0)))
	fmt.Println(venues.FloorName(venues.Level(-2)))
	fmt.Println(venues.FloorName(venues.Named("Mezzanine")))
	// Output:
	// the ground floor
	// floor B2
	// mezzanine floor
}
