package explorer

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/Mohsinsiddi/callscope/internal/config"
)

// pageSize is the txlist/txlistinternal page length. Etherscan caps
// page*offset at 10k records; the free BlockScout tier honors the same shape.
const pageSize = 1000

// Client talks to an Etherscan/BlockScout-compatible block explorer API.
// apiKey may be empty (free tier) or a paid key.
type Client struct {
	apiURL string
	apiKey string
	http   *http.Client
}

// New creates a Client for the given API base URL, e.g.
// "https://eth.blockscout.com/api".
func New(apiURL, apiKey string) *Client {
	return &Client{
		apiURL: apiURL,
		apiKey: apiKey,
		http:   &http.Client{Timeout: config.ExplorerTimeout},
	}
}

// envelope is the raw Etherscan-compatible API envelope. Result is kept as
// RawMessage because a failed call returns a plain string (e.g. "NOTOK")
// while a successful call returns a JSON array or object.
type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
}

// Transaction is one row of a txlist result. All numeric fields arrive as
// decimal strings; they are kept raw here and parsed where needed.
type Transaction struct {
	Hash            string `json:"hash"`
	BlockNumber     string `json:"blockNumber"`
	TimeStamp       string `json:"timeStamp"`
	From            string `json:"from"`
	To              string `json:"to"`
	Value           string `json:"value"`
	Input           string `json:"input"`
	IsError         string `json:"isError"`
	TxReceiptStatus string `json:"txreceipt_status"`
	ContractAddress string `json:"contractAddress"`
	// TraceID is only populated for internal (trace-level) calls.
	TraceID string `json:"traceId"`
}

// get performs one API call and unwraps the envelope. A status other than
// "1" with a "No transactions found" message is returned as an empty result,
// not an error — an idle contract is a valid report subject.
func (c *Client) get(params url.Values) (json.RawMessage, error) {
	if c.apiKey != "" {
		params.Set("apikey", c.apiKey)
	}

	// Use "&" when apiURL already contains a "?" (Etherscan V2 includes ?chainid=N).
	sep := "?"
	if strings.Contains(c.apiURL, "?") {
		sep = "&"
	}

	resp, err := c.http.Get(c.apiURL + sep + params.Encode())
	if err != nil {
		return nil, fmt.Errorf("explorer request failed: %w", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("parsing explorer response: %w", err)
	}

	if env.Status != "1" {
		if strings.Contains(env.Message, "No transactions found") {
			return json.RawMessage("[]"), nil
		}
		// Non-success: result may be a plain error string, not an array.
		var msg string
		if err := json.Unmarshal(env.Result, &msg); err == nil && msg != "" {
			return nil, fmt.Errorf("explorer API: %s", msg)
		}
		return nil, fmt.Errorf("explorer API: %s", env.Message)
	}

	return env.Result, nil
}

// BlockNumberByTime resolves a unix timestamp to a block number.
// closest is "before" or "after" (which side of the timestamp to land on).
func (c *Client) BlockNumberByTime(ts int64, closest string) (uint64, error) {
	params := url.Values{}
	params.Set("module", "block")
	params.Set("action", "getblocknobytime")
	params.Set("timestamp", strconv.FormatInt(ts, 10))
	params.Set("closest", closest)

	raw, err := c.get(params)
	if err != nil {
		return 0, err
	}

	// Some deployments return the block number as a bare string, others as
	// an object with a blockNumber field.
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		var obj struct {
			BlockNumber string `json:"blockNumber"`
		}
		if err := json.Unmarshal(raw, &obj); err != nil {
			return 0, fmt.Errorf("parsing block-by-time result: %w", err)
		}
		s = obj.BlockNumber
	}

	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("block-by-time returned %q: %w", s, err)
	}
	return n, nil
}

// NormalTransactions fetches every direct transaction touching address
// between startBlock and endBlock, walking pages until a short page.
func (c *Client) NormalTransactions(address string, startBlock, endBlock uint64) ([]Transaction, error) {
	return c.listTransactions("txlist", address, startBlock, endBlock)
}

// InternalTransactions fetches trace-level calls touching address between
// startBlock and endBlock, with the same pagination as NormalTransactions.
func (c *Client) InternalTransactions(address string, startBlock, endBlock uint64) ([]Transaction, error) {
	return c.listTransactions("txlistinternal", address, startBlock, endBlock)
}

func (c *Client) listTransactions(action, address string, startBlock, endBlock uint64) ([]Transaction, error) {
	var all []Transaction

	for page := 1; ; page++ {
		params := url.Values{}
		params.Set("module", "account")
		params.Set("action", action)
		params.Set("address", address)
		params.Set("startblock", strconv.FormatUint(startBlock, 10))
		params.Set("endblock", strconv.FormatUint(endBlock, 10))
		params.Set("page", strconv.Itoa(page))
		params.Set("offset", strconv.Itoa(pageSize))
		params.Set("sort", "desc")

		raw, err := c.get(params)
		if err != nil {
			return nil, fmt.Errorf("%s page %d: %w", action, page, err)
		}

		var batch []Transaction
		if err := json.Unmarshal(raw, &batch); err != nil {
			return nil, fmt.Errorf("parsing %s page %d: %w", action, page, err)
		}

		all = append(all, batch...)
		if len(batch) < pageSize {
			return all, nil
		}
	}
}

// ContractABI fetches the verified ABI JSON for a contract address.
// Returns the raw ABI array bytes, ready for schema.ParseJSON.
func (c *Client) ContractABI(address string) ([]byte, error) {
	params := url.Values{}
	params.Set("module", "contract")
	params.Set("action", "getabi")
	params.Set("address", address)

	raw, err := c.get(params)
	if err != nil {
		// Etherscan reports unverified contracts as a status-0 error;
		// BlockScout returns the message inside a status-1 result.
		if strings.Contains(err.Error(), "not verified") {
			return nil, fmt.Errorf("contract source code not verified for %s — supply the ABI with --abi", address)
		}
		return nil, fmt.Errorf("fetching ABI: %w", err)
	}

	// The ABI arrives as a JSON-encoded string containing the array.
	var abiJSON string
	if err := json.Unmarshal(raw, &abiJSON); err != nil {
		return nil, fmt.Errorf("parsing ABI result: %w", err)
	}
	if strings.Contains(abiJSON, "not verified") {
		return nil, fmt.Errorf("contract source code not verified for %s — supply the ABI with --abi", address)
	}
	return []byte(abiJSON), nil
}

// ParseBlockNumber parses the decimal blockNumber field of a Transaction.
// Malformed values parse as 0 rather than failing a whole report row.
func (t *Transaction) ParseBlockNumber() uint64 {
	n, _ := strconv.ParseUint(t.BlockNumber, 10, 64)
	return n
}

// ParseTimestamp parses the decimal timeStamp field as a unix time.
func (t *Transaction) ParseTimestamp() int64 {
	n, _ := strconv.ParseInt(t.TimeStamp, 10, 64)
	return n
}

// Failed reports whether the call itself errored. Internal transactions carry
// only isError; normal transactions also carry txreceipt_status.
func (t *Transaction) Failed() bool {
	if t.IsError == "1" {
		return true
	}
	return t.TxReceiptStatus == "0"
}
