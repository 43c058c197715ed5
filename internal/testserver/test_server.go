// Package testserver builds the full HTTP stack over an in-memory database
// for functional tests.
package testserver

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rpggio/scholarships/internal/domain/activity"
	"github.com/rpggio/scholarships/internal/domain/finder"
	"github.com/rpggio/scholarships/internal/domain/recommend"
	"github.com/rpggio/scholarships/internal/domain/scholarship"
	"github.com/rpggio/scholarships/internal/mcp"
	"github.com/rpggio/scholarships/internal/sqlite"
	"github.com/rpggio/scholarships/internal/transport"
	"github.com/stretchr/testify/require"
)

// Today is the fixed clock of every test server.
var Today = scholarship.MustDate(2024, time.December, 1)

// UpcomingDays is the default deadline horizon of every test server.
const UpcomingDays = 30

type TestServer struct {
	Server  *httptest.Server
	DB      *sqlite.DB
	Records []scholarship.Record
}

// New starts a server seeded with the SCU catalog. gen may be nil, in which
// case recommendations are unavailable.
func New(t *testing.T, gen recommend.Generator) *TestServer {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := sqlite.New(dsn)
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())

	records, err := scholarship.LoadCatalog(scholarship.CatalogSCU)
	require.NoError(t, err)

	scholarshipRepo := sqlite.NewScholarshipRepository(db)
	searchRepo := sqlite.NewSearchRepository(db)
	activityRepo := sqlite.NewActivityRepository(db)
	require.NoError(t, scholarshipRepo.ReplaceAll(context.Background(), records))

	finderSvc := finder.NewService(scholarshipRepo, searchRepo, activityRepo, nil)
	recommendSvc := recommend.NewService(gen, activityRepo, time.Second, nil)
	activitySvc := activity.NewService(activityRepo, nil)
	today := func() scholarship.Date { return Today }

	mcpServer := mcp.NewServer(mcp.Config{
		Services: mcp.Services{
			Finder:      finderSvc,
			Recommender: recommendSvc,
			Activity:    activitySvc,
		},
		TransportMode: "http",
		Today:         today,
		UpcomingDays:  UpcomingDays,
	})
	mcpHandler := sdkmcp.NewStreamableHTTPHandler(
		func(*http.Request) *sdkmcp.Server { return mcpServer },
		nil,
	)

	server := httptest.NewServer(transport.NewServer(transport.Config{
		RPC:          mcp.NewHandler(mcp.Services{Finder: finderSvc, Recommender: recommendSvc, Activity: activitySvc}, today, UpcomingDays),
		Finder:       finderSvc,
		Recommender:  recommendSvc,
		Activity:     activitySvc,
		MCP:          mcpHandler,
		Today:        today,
		UpcomingDays: UpcomingDays,
	}))

	t.Cleanup(func() {
		server.Close()
		_ = db.Close()
	})

	return &TestServer{Server: server, DB: db, Records: records}
}

// MCPEndpoint is the streamable MCP URL.
func (ts *TestServer) MCPEndpoint() string {
	return ts.Server.URL + "/mcp"
}

// Connect opens an MCP client session against the server.
func (ts *TestServer) Connect(t *testing.T) *sdkmcp.ClientSession {
	t.Helper()

	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "scholarships-test", Version: "0.0.1"}, nil)
	session, err := client.Connect(context.Background(), &sdkmcp.StreamableClientTransport{Endpoint: ts.MCPEndpoint()}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })
	return session
}
