package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"golang.org/x/crypto/bcrypt"

	"github.com/goat-farm/backend/config"
	"github.com/goat-farm/backend/internal/infra/dependency"
	"github.com/goat-farm/backend/internal/integration/adapters"
	"github.com/goat-farm/backend/internal/integration/persistence/model"
	"github.com/goat-farm/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

var (
	serverOnce sync.Once
	serverURI  string
	testDb     *mock.Db
)

type testContext struct {
	uri          string
	client       *http.Client
	headers      map[string]string
	placeholders map[string]string
	response     *http.Response
	responseBody []byte
}

func startServer() string {
	testDb = mock.NewDb()

	cfg := &config.Config{
		Server: config.ServerConfig{
			Environment: "test",
		},
		JWT: config.JWTConfig{
			Secret:            testJWTSecret,
			AccessTokenExpiry: time.Hour,
		},
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	injector := dependency.NewInjector(cfg, testDb.DbConn, logger)
	engine := injector.Router.Setup(cfg.Server.Environment)

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		panic(fmt.Sprintf("failed to open test listener: %s", err.Error()))
	}

	go func() {
		if err := http.Serve(listener, engine); err != nil {
			panic(fmt.Sprintf("test server stopped: %s", err.Error()))
		}
	}()

	return "http://" + listener.Addr().String()
}

// InitializeTestSuite boots the API once against the shared in-memory
// database before any scenario runs.
func InitializeTestSuite(suiteCtx *godog.TestSuiteContext) {
	suiteCtx.BeforeSuite(func() {
		serverOnce.Do(func() {
			serverURI = startServer()
		})
	})
}

// InitializeScenario wires the step definitions and resets DB state
// between scenarios.
func InitializeScenario(scenarioCtx *godog.ScenarioContext) {
	tc := &testContext{
		client: &http.Client{Timeout: 10 * time.Second},
	}

	scenarioCtx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.uri = serverURI
		tc.headers = map[string]string{"Content-Type": "application/json"}
		tc.placeholders = map[string]string{}
		tc.response = nil
		tc.responseBody = nil

		if err := testDb.ClearDB(); err != nil {
			return ctx, fmt.Errorf("failed to reset database: %w", err)
		}
		return ctx, nil
	})

	scenarioCtx.Step(`^the server is running$`, tc.theServerIsRunning)
	scenarioCtx.Step(`^a user exists with email "([^"]*)" and password "([^"]*)"$`, tc.aUserExists)
	scenarioCtx.Step(`^I am logged in as "([^"]*)"$`, tc.iAmLoggedInAs)
	scenarioCtx.Step(`^I am not authenticated$`, tc.iAmNotAuthenticated)
	scenarioCtx.Step(`^an animal exists with tag "([^"]*)"$`, tc.anAnimalExistsWithTag)
	scenarioCtx.Step(`^a sold animal exists with tag "([^"]*)"$`, tc.aSoldAnimalExistsWithTag)
	scenarioCtx.Step(`^a doe exists with tag "([^"]*)"$`, tc.aDoeExistsWithTag)
	scenarioCtx.Step(`^a buck exists with tag "([^"]*)"$`, tc.aBuckExistsWithTag)

	scenarioCtx.Step(`^I send a (GET|POST|PATCH|DELETE) request to "([^"]*)"$`, tc.iSendARequest)
	scenarioCtx.Step(`^I send a (GET|POST|PATCH|DELETE) request to "([^"]*)" with body:$`, tc.iSendARequestWithBody)

	scenarioCtx.Step(`^the response status code should be (\d+)$`, tc.theResponseStatusCodeShouldBe)
	scenarioCtx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, tc.theResponseFieldShouldBe)
	scenarioCtx.Step(`^the response field "([^"]*)" should exist$`, tc.theResponseFieldShouldExist)
	scenarioCtx.Step(`^the response should contain "([^"]*)"$`, tc.theResponseShouldContain)
	scenarioCtx.Step(`^I store the response field "([^"]*)" as "([^"]*)"$`, tc.iStoreTheResponseField)
	scenarioCtx.Step(`^the "([^"]*)" table should have (\d+) records?$`, tc.theTableShouldHaveRecords)
}

func (tc *testContext) theServerIsRunning() error {
	if tc.uri == "" {
		return fmt.Errorf("test server was not started")
	}
	return nil
}

func (tc *testContext) aUserExists(email, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := model.UserModel{
		Name:         "Test Farmer",
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := testDb.DbConn.Create(&user).Error; err != nil {
		return fmt.Errorf("failed to seed user: %w", err)
	}

	tc.placeholders["user_id"] = fmt.Sprintf("%d", user.ID)
	return nil
}

func (tc *testContext) iAmLoggedInAs(email string) error {
	var user model.UserModel
	if err := testDb.DbConn.Where("email = ?", email).First(&user).Error; err != nil {
		if err := tc.aUserExists(email, "integration-password"); err != nil {
			return err
		}
		if err := testDb.DbConn.Where("email = ?", email).First(&user).Error; err != nil {
			return fmt.Errorf("failed to load seeded user: %w", err)
		}
	}

	tokenService := adapters.NewTokenService(testJWTSecret, time.Hour)
	token, err := tokenService.GenerateAccessToken(user.ID, user.Email, user.IsAdmin)
	if err != nil {
		return fmt.Errorf("failed to generate access token: %w", err)
	}

	tc.placeholders["access_token"] = token
	tc.headers["Authorization"] = "Bearer " + token
	return nil
}

func (tc *testContext) iAmNotAuthenticated() error {
	delete(tc.headers, "Authorization")
	delete(tc.placeholders, "access_token")
	return nil
}

func (tc *testContext) anAnimalExistsWithTag(tagID string) error {
	return tc.seedAnimal(tagID, "Doe", "Active", "animal_id")
}

func (tc *testContext) aSoldAnimalExistsWithTag(tagID string) error {
	return tc.seedAnimal(tagID, "Doe", "Sold", "animal_id")
}

func (tc *testContext) aDoeExistsWithTag(tagID string) error {
	return tc.seedAnimal(tagID, "Doe", "Active", "doe_id")
}

func (tc *testContext) aBuckExistsWithTag(tagID string) error {
	return tc.seedAnimal(tagID, "Buck", "Active", "buck_id")
}

func (tc *testContext) seedAnimal(tagID, sex, status, placeholder string) error {
	birthDate := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	animal := model.AnimalModel{
		TagID:        tagID,
		Breed:        "Boer",
		Sex:          sex,
		BirthDate:    &birthDate,
		HealthStatus: "Healthy",
		Category:     "Adult",
		Status:       status,
	}
	if err := testDb.DbConn.Create(&animal).Error; err != nil {
		return fmt.Errorf("failed to seed animal: %w", err)
	}

	tc.placeholders[placeholder] = fmt.Sprintf("%d", animal.ID)
	return nil
}

func (tc *testContext) iSendARequest(method, path string) error {
	return tc.executeRequest(method, path, "")
}

func (tc *testContext) iSendARequestWithBody(method, path string, body *godog.DocString) error {
	return tc.executeRequest(method, path, body.Content)
}

func (tc *testContext) executeRequest(method, path, body string) error {
	path = tc.replacePlaceholders(path)
	body = tc.replacePlaceholders(body)

	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}

	req, err := http.NewRequest(method, tc.uri+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	for key, value := range tc.headers {
		req.Header.Set(key, value)
	}

	resp, err := tc.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	tc.response = resp
	tc.responseBody = responseBody
	return nil
}

func (tc *testContext) replacePlaceholders(value string) string {
	for key, replacement := range tc.placeholders {
		value = strings.ReplaceAll(value, "{{"+key+"}}", replacement)
	}
	return value
}

func (tc *testContext) theResponseStatusCodeShouldBe(expected int) error {
	if tc.response == nil {
		return fmt.Errorf("no response captured")
	}
	if tc.response.StatusCode != expected {
		return fmt.Errorf("expected status %d, got %d. body: %s",
			expected, tc.response.StatusCode, string(tc.responseBody))
	}
	return nil
}

func (tc *testContext) theResponseFieldShouldBe(field, expected string) error {
	value, err := tc.getResponseField(field)
	if err != nil {
		return err
	}

	actual := fmt.Sprintf("%v", value)
	if f, ok := value.(float64); ok && f == float64(int64(f)) {
		actual = fmt.Sprintf("%d", int64(f))
	}

	expected = tc.replacePlaceholders(expected)
	if actual != expected {
		return fmt.Errorf("expected field %q to be %q, got %q. body: %s",
			field, expected, actual, string(tc.responseBody))
	}
	return nil
}

func (tc *testContext) theResponseFieldShouldExist(field string) error {
	_, err := tc.getResponseField(field)
	return err
}

func (tc *testContext) theResponseShouldContain(expected string) error {
	expected = tc.replacePlaceholders(expected)
	if !strings.Contains(string(tc.responseBody), expected) {
		return fmt.Errorf("expected response to contain %q. body: %s",
			expected, string(tc.responseBody))
	}
	return nil
}

func (tc *testContext) iStoreTheResponseField(field, name string) error {
	value, err := tc.getResponseField(field)
	if err != nil {
		return err
	}

	stored := fmt.Sprintf("%v", value)
	if f, ok := value.(float64); ok && f == float64(int64(f)) {
		stored = fmt.Sprintf("%d", int64(f))
	}

	tc.placeholders[name] = stored
	return nil
}

func (tc *testContext) getResponseField(field string) (any, error) {
	if tc.responseBody == nil {
		return nil, fmt.Errorf("no response captured")
	}

	var parsed any
	if err := json.Unmarshal(tc.responseBody, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse response body: %w", err)
	}

	current := parsed
	for _, part := range strings.Split(field, ".") {
		switch node := current.(type) {
		case map[string]any:
			value, ok := node[part]
			if !ok {
				return nil, fmt.Errorf("field %q not found in response. body: %s",
					field, string(tc.responseBody))
			}
			current = value
		case []any:
			var index int
			if _, err := fmt.Sscanf(part, "%d", &index); err != nil {
				return nil, fmt.Errorf("field path %q indexes an array with %q", field, part)
			}
			if index < 0 || index >= len(node) {
				return nil, fmt.Errorf("index %d out of range for field %q", index, field)
			}
			current = node[index]
		default:
			return nil, fmt.Errorf("field %q not found in response. body: %s",
				field, string(tc.responseBody))
		}
	}

	return current, nil
}

func (tc *testContext) theTableShouldHaveRecords(table string, expected int) error {
	if _, ok := testDb.GetModel(table); !ok {
		return fmt.Errorf("unknown table %q", table)
	}

	var count int64
	if err := testDb.DbConn.Table(table).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count rows in %q: %w", table, err)
	}

	if count != int64(expected) {
		return fmt.Errorf("expected %d records in %q, got %d", expected, table, count)
	}
	return nil
}
