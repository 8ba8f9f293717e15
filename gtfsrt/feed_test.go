package gtfsrt_test

import (
	"testing"
	"time"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"

	"github.com/theoremus-urban-solutions/venuefinder/gtfsrt"
)

func tripUpdate(id, route string) *gtfsrtpb.FeedEntity {
	return &gtfsrtpb.FeedEntity{
		Id: proto.String(id),
		TripUpdate: &gtfsrtpb.TripUpdate{
			Trip: &gtfsrtpb.TripDescriptor{TripId: proto.String("trip-" + id), RouteId: proto.String(route)},
		},
	}
}

func vehicle(id, route string) *gtfsrtpb.FeedEntity {
	return &gtfsrtpb.FeedEntity{
		Id: proto.String(id),
		Vehicle: &gtfsrtpb.VehiclePosition{
			Trip: &gtfsrtpb.TripDescriptor{RouteId: proto.String(route)},
		},
	}
}

func alert(id string, selectors ...*gtfsrtpb.EntitySelector) *gtfsrtpb.FeedEntity {
	return &gtfsrtpb.FeedEntity{
		Id:    proto.String(id),
		Alert: &gtfsrtpb.Alert{InformedEntity: selectors},
	}
}

func marshalFeed(t *testing.T, ts uint64, entities ...*gtfsrtpb.FeedEntity) []byte {
	t.Helper()
	fm := &gtfsrtpb.FeedMessage{
		Header: &gtfsrtpb.FeedHeader{
			GtfsRealtimeVersion: proto.String("2.0"),
			Timestamp:           proto.Uint64(ts),
		},
		Entity: entities,
	}
	data, err := proto.Marshal(fm)
	require.NoError(t, err)
	return data
}

type lineNames map[string]string

func (m lineNames) LineName(routeID string) string {
	if n, ok := m[routeID]; ok {
		return n
	}
	return routeID
}

func TestParseFeed(t *testing.T) {
	data := marshalFeed(t, 1_700_000_000,
		tripUpdate("1", "95"),
		tripUpdate("2", "10"),
		vehicle("3", "95"),
		vehicle("4", "183"),
		alert("5",
			&gtfsrtpb.EntitySelector{RouteId: proto.String("33")},
			&gtfsrtpb.EntitySelector{Trip: &gtfsrtpb.TripDescriptor{RouteId: proto.String("151")}},
			&gtfsrtpb.EntitySelector{StopId: proto.String("S1")},
		),
		&gtfsrtpb.FeedEntity{Id: proto.String("6"), Vehicle: &gtfsrtpb.VehiclePosition{}},
		&gtfsrtpb.FeedEntity{Id: proto.String("7"), IsDeleted: proto.Bool(true), TripUpdate: &gtfsrtpb.TripUpdate{
			Trip: &gtfsrtpb.TripDescriptor{RouteId: proto.String("999")},
		}},
	)

	feed, err := gtfsrt.ParseFeed(data)
	require.NoError(t, err)

	assert.Equal(t, time.Unix(1_700_000_000, 0).UTC(), feed.Timestamp())
	assert.Equal(t, 7, feed.Entities())
	assert.Equal(t, 2, feed.Skipped(), "routeless vehicle and deleted entity")
	assert.Equal(t, []string{"10", "33", "95", "151", "183"}, feed.RouteIDs())
}

func TestFeed_PublicRoutes(t *testing.T) {
	data := marshalFeed(t, 0, tripUpdate("1", "R95"), tripUpdate("2", "R10"), vehicle("3", "R10E"))
	feed, err := gtfsrt.ParseFeed(data)
	require.NoError(t, err)

	assert.True(t, feed.Timestamp().IsZero())
	assert.Equal(t, []string{"PUB:R10", "PUB:R10E", "PUB:R95"}, feed.PublicRoutes(nil))

	names := lineNames{"R95": "95", "R10": "10", "R10E": "10e"}
	assert.Equal(t, []string{"PUB:10", "PUB:10e", "PUB:95"}, feed.PublicRoutes(names))
}

func TestParseFeed_Errors(t *testing.T) {
	_, err := gtfsrt.ParseFeed(nil)
	assert.ErrorIs(t, err, gtfsrt.ErrEmptyFeed)

	_, err = gtfsrt.ParseFeed([]byte("not a protobuf"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, gtfsrt.ErrEmptyFeed)
}

func TestParseFeed_NoEntities(t *testing.T) {
	feed, err := gtfsrt.ParseFeed(marshalFeed(t, 42))
	require.NoError(t, err)
	assert.Empty(t, feed.RouteIDs())
	assert.Empty(t, feed.PublicRoutes(nil))
	assert.Equal(t, 0, feed.Entities())
}
