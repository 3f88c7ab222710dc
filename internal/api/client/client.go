package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/lukasringel/economy-service/internal/models"
)

// Client is a typed HTTP client for the economy service, mirroring its REST
// surface for remote consumers.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func New(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		http: &http.Client{
			Timeout:   10 * time.Second,
			Transport: &loggingTransport{next: http.DefaultTransport},
		},
	}
}

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) do(method, path string, query url.Values, body, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, endpoint, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decoding response of %s %s: %w", method, path, err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s %s: %s (status %d)", method, path, env.Message, resp.StatusCode)
	}
	if out != nil {
		return json.Unmarshal(env.Data, out)
	}
	return nil
}

// CreateEconomy registers a new economy.
func (c *Client) CreateEconomy(name string, startValue float64) (models.Economy, error) {
	var economy models.Economy
	err := c.do(http.MethodPost, "/economy/create", nil, map[string]interface{}{
		"name":        name,
		"start_value": startValue,
	}, &economy)
	return economy, err
}

// EconomyByID fetches an economy by id.
func (c *Client) EconomyByID(id uint) (models.Economy, error) {
	var economy models.Economy
	err := c.do(http.MethodGet, "/economy/by/id", uintQuery("id", id), nil, &economy)
	return economy, err
}

// EconomyByName fetches an economy by name (case-insensitive).
func (c *Client) EconomyByName(name string) (models.Economy, error) {
	var economy models.Economy
	err := c.do(http.MethodGet, "/economy/by/name", url.Values{"name": {name}}, nil, &economy)
	return economy, err
}

// CreateAccount opens an account for the user in the economy.
func (c *Client) CreateAccount(userID, economyID uint) (models.Account, error) {
	var account models.Account
	err := c.do(http.MethodPost, "/account/create", nil, map[string]interface{}{
		"user_id":    userID,
		"economy_id": economyID,
	}, &account)
	return account, err
}

// IncreaseWorth adds amount to the account balance.
func (c *Client) IncreaseWorth(accountID uint, amount float64, comment *string) (models.Account, error) {
	return c.mutateWorth("/account/worth/increase", accountID, amount, comment)
}

// DecreaseWorth subtracts amount from the account balance.
func (c *Client) DecreaseWorth(accountID uint, amount float64, comment *string) (models.Account, error) {
	return c.mutateWorth("/account/worth/decrease", accountID, amount, comment)
}

func (c *Client) mutateWorth(path string, accountID uint, amount float64, comment *string) (models.Account, error) {
	var account models.Account
	err := c.do(http.MethodPost, path, nil, map[string]interface{}{
		"account_id": accountID,
		"amount":     amount,
		"comment":    comment,
	}, &account)
	return account, err
}

// AccountByID fetches an account by id.
func (c *Client) AccountByID(id uint) (models.Account, error) {
	var account models.Account
	err := c.do(http.MethodGet, "/account/get/single", uintQuery("id", id), nil, &account)
	return account, err
}

// CreateUser creates a user with external identifiers (flat key, value list).
func (c *Client) CreateUser(identifierPairs ...string) (models.User, error) {
	var user models.User
	err := c.do(http.MethodPost, "/user/create", nil, map[string]interface{}{
		"identifiers": identifierPairs,
	}, &user)
	return user, err
}

// UserByID fetches a user by id.
func (c *Client) UserByID(id uint) (models.User, error) {
	var user models.User
	err := c.do(http.MethodGet, "/user/by/id", uintQuery("id", id), nil, &user)
	return user, err
}

// UserByIdentifier fetches a user through an external identifier.
func (c *Client) UserByIdentifier(key, value string) (models.User, error) {
	var user models.User
	err := c.do(http.MethodGet, "/user/by/identifier", url.Values{"key": {key}, "value": {value}}, nil, &user)
	return user, err
}

// TransactionsOfAccount fetches every transaction of an account.
func (c *Client) TransactionsOfAccount(accountID uint) ([]models.Transaction, error) {
	var transactions []models.Transaction
	err := c.do(http.MethodGet, "/transaction/account/all/allTime", uintQuery("account_id", accountID), nil, &transactions)
	return transactions, err
}

// Refresh triggers the operator refresh command.
func (c *Client) Refresh() error {
	return c.do(http.MethodPost, "/refresh", nil, nil, nil)
}

func uintQuery(key string, value uint) url.Values {
	return url.Values{key: {strconv.FormatUint(uint64(value), 10)}}
}
