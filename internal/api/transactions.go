package api

import (
	"fmt"
	"net/http"
)

// ListTransactions fetches the account's transaction history.
func (c *Client) ListTransactions() ([]Transaction, error) {
	var txs []Transaction
	if err := c.do(http.MethodGet, c.url("transactions"), nil, &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

// GetTransaction fetches one transaction with its line items.
func (c *Client) GetTransaction(id string) (*Transaction, error) {
	var tx Transaction
	if err := c.do(http.MethodGet, c.url("transactions", id), nil, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

type checkoutRequest struct {
	Items []CheckoutItem `json:"items"`
}

// CreateTransaction converts cart lines into a transaction (checkout).
func (c *Client) CreateTransaction(items []CheckoutItem) (*Transaction, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("checkout requires at least one item")
	}
	var tx Transaction
	if err := c.do(http.MethodPost, c.url("transactions"), checkoutRequest{Items: items}, &tx); err != nil {
		return nil, fmt.Errorf("checkout: %w", err)
	}
	return &tx, nil
}

// TransactionStats fetches aggregate purchase statistics.
func (c *Client) TransactionStats() (*TransactionStats, error) {
	var stats TransactionStats
	if err := c.do(http.MethodGet, c.url("transactions", "statistics"), nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
