package contracts

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/event"
)

// PoolKey is an auto generated low-level Go binding around an user-defined struct.
type PoolKey struct {
	Currency0   common.Address
	Currency1   common.Address
	Fee         *big.Int
	TickSpacing *big.Int
	Hooks       common.Address
}

// IntentManagerIntent is an auto generated low-level Go binding around an user-defined struct.
type IntentManagerIntent struct {
	Lp                common.Address
	Pool              PoolKey
	TickLower         *big.Int
	TickUpper         *big.Int
	TotalLiquidity    *big.Int
	ExecutedLiquidity *big.Int
	MaxChunk          *big.Int
	Active            bool
}

// IntentManagerABI is the ABI of the IntentManager contract
const IntentManagerABI = `[
	{
		"inputs": [
			{
				"components": [
					{ "internalType": "address", "name": "currency0", "type": "address" },
					{ "internalType": "address", "name": "currency1", "type": "address" },
					{ "internalType": "uint24", "name": "fee", "type": "uint24" },
					{ "internalType": "int24", "name": "tickSpacing", "type": "int24" },
					{ "internalType": "address", "name": "hooks", "type": "address" }
				],
				"internalType": "struct PoolKey",
				"name": "pool",
				"type": "tuple"
			},
			{ "internalType": "int24", "name": "tickLower", "type": "int24" },
			{ "internalType": "int24", "name": "tickUpper", "type": "int24" },
			{ "internalType": "uint128", "name": "totalLiquidity", "type": "uint128" },
			{ "internalType": "uint128", "name": "maxChunk", "type": "uint128" }
		],
		"name": "createIntent",
		"outputs": [{ "internalType": "uint256", "name": "intentId", "type": "uint256" }],
		"stateMutability": "nonpayable",
		"type": "function"
	},
	{
		"inputs": [{ "internalType": "uint256", "name": "intentId", "type": "uint256" }],
		"name": "cancelIntent",
		"outputs": [],
		"stateMutability": "nonpayable",
		"type": "function"
	},
	{
		"inputs": [{ "internalType": "uint256", "name": "intentId", "type": "uint256" }],
		"name": "getIntent",
		"outputs": [
			{
				"components": [
					{ "internalType": "address", "name": "lp", "type": "address" },
					{
						"components": [
							{ "internalType": "address", "name": "currency0", "type": "address" },
							{ "internalType": "address", "name": "currency1", "type": "address" },
							{ "internalType": "uint24", "name": "fee", "type": "uint24" },
							{ "internalType": "int24", "name": "tickSpacing", "type": "int24" },
							{ "internalType": "address", "name": "hooks", "type": "address" }
						],
						"internalType": "struct PoolKey",
						"name": "pool",
						"type": "tuple"
					},
					{ "internalType": "int24", "name": "tickLower", "type": "int24" },
					{ "internalType": "int24", "name": "tickUpper", "type": "int24" },
					{ "internalType": "uint128", "name": "totalLiquidity", "type": "uint128" },
					{ "internalType": "uint128", "name": "executedLiquidity", "type": "uint128" },
					{ "internalType": "uint128", "name": "maxChunk", "type": "uint128" },
					{ "internalType": "bool", "name": "active", "type": "bool" }
				],
				"internalType": "struct IntentManager.Intent",
				"name": "",
				"type": "tuple"
			}
		],
		"stateMutability": "view",
		"type": "function"
	},
	{
		"inputs": [],
		"name": "nextIntentId",
		"outputs": [{ "internalType": "uint256", "name": "", "type": "uint256" }],
		"stateMutability": "view",
		"type": "function"
	},
	{
		"anonymous": false,
		"inputs": [
			{ "indexed": true, "internalType": "uint256", "name": "intentId", "type": "uint256" },
			{ "indexed": true, "internalType": "address", "name": "lp", "type": "address" },
			{ "indexed": false, "internalType": "uint128", "name": "totalLiquidity", "type": "uint128" },
			{ "indexed": false, "internalType": "uint128", "name": "maxChunk", "type": "uint128" }
		],
		"name": "IntentCreated",
		"type": "event"
	}
]`

// IntentManager is an auto generated Go binding around an Ethereum contract.
type IntentManager struct {
	IntentManagerCaller     // Read-only binding to the contract
	IntentManagerTransactor // Write-only binding to the contract
	IntentManagerFilterer   // Log filterer for contract events
}

// IntentManagerCaller is an auto generated read-only Go binding around an Ethereum contract.
type IntentManagerCaller struct {
	contract *bind.BoundContract // Generic contract wrapper for the low level calls
}

// IntentManagerTransactor is an auto generated write-only Go binding around an Ethereum contract.
type IntentManagerTransactor struct {
	contract *bind.BoundContract // Generic contract wrapper for the low level calls
}

// IntentManagerFilterer is an auto generated log filtering Go binding around an Ethereum contract events.
type IntentManagerFilterer struct {
	contract *bind.BoundContract // Generic contract wrapper for the low level calls
}

// IntentManagerSession is an auto generated Go binding around an Ethereum contract,
// with pre-set call and transact options.
type IntentManagerSession struct {
	Contract     *IntentManager    // Generic contract binding to set the session for
	CallOpts     bind.CallOpts     // Call options to use throughout this session
	TransactOpts bind.TransactOpts // Transaction auth options to use throughout this session
}

// IntentManagerCallerSession is an auto generated read-only Go binding around an Ethereum contract,
// with pre-set call options.
type IntentManagerCallerSession struct {
	Contract *IntentManagerCaller // Generic contract caller binding to set the session for
	CallOpts bind.CallOpts        // Call options to use throughout this session
}

// IntentManagerTransactorSession is an auto generated write-only Go binding around an Ethereum contract,
// with pre-set transact options.
type IntentManagerTransactorSession struct {
	Contract     *IntentManagerTransactor // Generic contract transactor binding to set the session for
	TransactOpts bind.TransactOpts        // Transaction auth options to use throughout this session
}

// NewIntentManager creates a new instance of IntentManager, bound to a specific deployed contract.
func NewIntentManager(address common.Address, backend bind.ContractBackend) (*IntentManager, error) {
	contract, err := bindIntentManager(address, backend, backend, backend)
	if err != nil {
		return nil, err
	}
	return &IntentManager{
		IntentManagerCaller:     IntentManagerCaller{contract: contract},
		IntentManagerTransactor: IntentManagerTransactor{contract: contract},
		IntentManagerFilterer:   IntentManagerFilterer{contract: contract},
	}, nil
}

// NewIntentManagerCaller creates a new read-only instance of IntentManager, bound to a specific deployed contract.
func NewIntentManagerCaller(address common.Address, caller bind.ContractCaller) (*IntentManagerCaller, error) {
	contract, err := bindIntentManager(address, caller, nil, nil)
	if err != nil {
		return nil, err
	}
	return &IntentManagerCaller{contract: contract}, nil
}

// NewIntentManagerTransactor creates a new write-only instance of IntentManager, bound to a specific deployed contract.
func NewIntentManagerTransactor(address common.Address, transactor bind.ContractTransactor) (*IntentManagerTransactor, error) {
	contract, err := bindIntentManager(address, nil, transactor, nil)
	if err != nil {
		return nil, err
	}
	return &IntentManagerTransactor{contract: contract}, nil
}

// NewIntentManagerFilterer creates a new log filterer instance of IntentManager, bound to a specific deployed contract.
func NewIntentManagerFilterer(address common.Address, filterer bind.ContractFilterer) (*IntentManagerFilterer, error) {
	contract, err := bindIntentManager(address, nil, nil, filterer)
	if err != nil {
		return nil, err
	}
	return &IntentManagerFilterer{contract: contract}, nil
}

// bindIntentManager binds a generic wrapper to an already deployed contract.
func bindIntentManager(address common.Address, caller bind.ContractCaller, transactor bind.ContractTransactor, filterer bind.ContractFilterer) (*bind.BoundContract, error) {
	parsed, err := abi.JSON(strings.NewReader(IntentManagerABI))
	if err != nil {
		return nil, err
	}
	return bind.NewBoundContract(address, parsed, caller, transactor, filterer), nil
}

// GetIntent is a free data retrieval call binding the contract method 0x2e9b50bd.
//
// Solidity: function getIntent(uint256 intentId) view returns((address,(address,address,uint24,int24,address),int24,int24,uint128,uint128,uint128,bool))
func (_IntentManager *IntentManagerCaller) GetIntent(opts *bind.CallOpts, intentId *big.Int) (IntentManagerIntent, error) {
	var out []interface{}
	err := _IntentManager.contract.Call(opts, &out, "getIntent", intentId)

	if err != nil {
		return *new(IntentManagerIntent), err
	}

	out0 := *abi.ConvertType(out[0], new(IntentManagerIntent)).(*IntentManagerIntent)

	return out0, err
}

// GetIntent is a free data retrieval call binding the contract method 0x2e9b50bd.
//
// Solidity: function getIntent(uint256 intentId) view returns((address,(address,address,uint24,int24,address),int24,int24,uint128,uint128,uint128,bool))
func (_IntentManager *IntentManagerSession) GetIntent(intentId *big.Int) (IntentManagerIntent, error) {
	return _IntentManager.Contract.GetIntent(&_IntentManager.CallOpts, intentId)
}

// GetIntent is a free data retrieval call binding the contract method 0x2e9b50bd.
//
// Solidity: function getIntent(uint256 intentId) view returns((address,(address,address,uint24,int24,address),int24,int24,uint128,uint128,uint128,bool))
func (_IntentManager *IntentManagerCallerSession) GetIntent(intentId *big.Int) (IntentManagerIntent, error) {
	return _IntentManager.Contract.GetIntent(&_IntentManager.CallOpts, intentId)
}

// NextIntentId is a free data retrieval call binding the contract method 0x8a72ea6a.
//
// Solidity: function nextIntentId() view returns(uint256)
func (_IntentManager *IntentManagerCaller) NextIntentId(opts *bind.CallOpts) (*big.Int, error) {
	var out []interface{}
	err := _IntentManager.contract.Call(opts, &out, "nextIntentId")

	if err != nil {
		return *new(*big.Int), err
	}

	out0 := *abi.ConvertType(out[0], new(*big.Int)).(**big.Int)

	return out0, err
}

// NextIntentId is a free data retrieval call binding the contract method 0x8a72ea6a.
//
// Solidity: function nextIntentId() view returns(uint256)
func (_IntentManager *IntentManagerSession) NextIntentId() (*big.Int, error) {
	return _IntentManager.Contract.NextIntentId(&_IntentManager.CallOpts)
}

// NextIntentId is a free data retrieval call binding the contract method 0x8a72ea6a.
//
// Solidity: function nextIntentId() view returns(uint256)
func (_IntentManager *IntentManagerCallerSession) NextIntentId() (*big.Int, error) {
	return _IntentManager.Contract.NextIntentId(&_IntentManager.CallOpts)
}

// CreateIntent is a paid mutator transaction binding the contract method 0x3c7a3aff.
//
// Solidity: function createIntent((address,address,uint24,int24,address) pool, int24 tickLower, int24 tickUpper, uint128 totalLiquidity, uint128 maxChunk) returns(uint256 intentId)
func (_IntentManager *IntentManagerTransactor) CreateIntent(opts *bind.TransactOpts, pool PoolKey, tickLower *big.Int, tickUpper *big.Int, totalLiquidity *big.Int, maxChunk *big.Int) (*types.Transaction, error) {
	return _IntentManager.contract.Transact(opts, "createIntent", pool, tickLower, tickUpper, totalLiquidity, maxChunk)
}

// CreateIntent is a paid mutator transaction binding the contract method 0x3c7a3aff.
//
// Solidity: function createIntent((address,address,uint24,int24,address) pool, int24 tickLower, int24 tickUpper, uint128 totalLiquidity, uint128 maxChunk) returns(uint256 intentId)
func (_IntentManager *IntentManagerSession) CreateIntent(pool PoolKey, tickLower *big.Int, tickUpper *big.Int, totalLiquidity *big.Int, maxChunk *big.Int) (*types.Transaction, error) {
	return _IntentManager.Contract.CreateIntent(&_IntentManager.TransactOpts, pool, tickLower, tickUpper, totalLiquidity, maxChunk)
}

// CreateIntent is a paid mutator transaction binding the contract method 0x3c7a3aff.
//
// Solidity: function createIntent((address,address,uint24,int24,address) pool, int24 tickLower, int24 tickUpper, uint128 totalLiquidity, uint128 maxChunk) returns(uint256 intentId)
func (_IntentManager *IntentManagerTransactorSession) CreateIntent(pool PoolKey, tickLower *big.Int, tickUpper *big.Int, totalLiquidity *big.Int, maxChunk *big.Int) (*types.Transaction, error) {
	return _IntentManager.Contract.CreateIntent(&_IntentManager.TransactOpts, pool, tickLower, tickUpper, totalLiquidity, maxChunk)
}

// CancelIntent is a paid mutator transaction binding the contract method 0x7f2aa1a7.
//
// Solidity: function cancelIntent(uint256 intentId) returns()
func (_IntentManager *IntentManagerTransactor) CancelIntent(opts *bind.TransactOpts, intentId *big.Int) (*types.Transaction, error) {
	return _IntentManager.contract.Transact(opts, "cancelIntent", intentId)
}

// CancelIntent is a paid mutator transaction binding the contract method 0x7f2aa1a7.
//
// Solidity: function cancelIntent(uint256 intentId) returns()
func (_IntentManager *IntentManagerSession) CancelIntent(intentId *big.Int) (*types.Transaction, error) {
	return _IntentManager.Contract.CancelIntent(&_IntentManager.TransactOpts, intentId)
}

// CancelIntent is a paid mutator transaction binding the contract method 0x7f2aa1a7.
//
// Solidity: function cancelIntent(uint256 intentId) returns()
func (_IntentManager *IntentManagerTransactorSession) CancelIntent(intentId *big.Int) (*types.Transaction, error) {
	return _IntentManager.Contract.CancelIntent(&_IntentManager.TransactOpts, intentId)
}

// IntentManagerIntentCreatedIterator is returned from FilterIntentCreated and is used to iterate over the raw logs and unpacked data for IntentCreated events raised by the IntentManager contract.
type IntentManagerIntentCreatedIterator struct {
	Event *IntentManagerIntentCreated // Event containing the contract specifics and raw log

	contract *bind.BoundContract // Generic contract to use for unpacking event data
	event    string              // Event name to use for unpacking event data

	logs chan types.Log        // Log channel receiving the found contract events
	sub  ethereum.Subscription // Subscription for errors, completion and termination
	done bool                  // Whether the subscription completed delivering logs
	fail error                 // Occurred error to stop iteration
}

// Next advances the iterator to the subsequent event, returning whether there
// are any more events found. In case of a retrieval or parsing error, false is
// returned and Error() can be queried for the exact failure.
func (it *IntentManagerIntentCreatedIterator) Next() bool {
	// If the iterator failed, stop iterating
	if it.fail != nil {
		return false
	}
	// If the iterator completed, deliver directly whatever's available
	if it.done {
		select {
		case log := <-it.logs:
			it.Event = new(IntentManagerIntentCreated)
			if err := it.contract.UnpackLog(it.Event, it.event, log); err != nil {
				it.fail = err
				return false
			}
			it.Event.Raw = log
			return true

		default:
			return false
		}
	}
	// Iterator still in progress, wait for either a data or an error event
	select {
	case log := <-it.logs:
		it.Event = new(IntentManagerIntentCreated)
		if err := it.contract.UnpackLog(it.Event, it.event, log); err != nil {
			it.fail = err
			return false
		}
		it.Event.Raw = log
		return true

	case err := <-it.sub.Err():
		it.done = true
		it.fail = err
		return it.Next()
	}
}

// Error returns any retrieval or parsing error occurred during filtering.
func (it *IntentManagerIntentCreatedIterator) Error() error {
	return it.fail
}

// Close terminates the iteration process, releasing any pending underlying
// resources.
func (it *IntentManagerIntentCreatedIterator) Close() error {
	it.sub.Unsubscribe()
	return nil
}

// IntentManagerIntentCreated represents a IntentCreated event raised by the IntentManager contract.
type IntentManagerIntentCreated struct {
	IntentId       *big.Int
	Lp             common.Address
	TotalLiquidity *big.Int
	MaxChunk       *big.Int
	Raw            types.Log // Blockchain specific contextual infos
}

// FilterIntentCreated is a free log retrieval operation binding the contract event 0x6ec4b3f8.
//
// Solidity: event IntentCreated(uint256 indexed intentId, address indexed lp, uint128 totalLiquidity, uint128 maxChunk)
func (_IntentManager *IntentManagerFilterer) FilterIntentCreated(opts *bind.FilterOpts, intentId []*big.Int, lp []common.Address) (*IntentManagerIntentCreatedIterator, error) {
	var intentIdRule []interface{}
	for _, intentIdItem := range intentId {
		intentIdRule = append(intentIdRule, intentIdItem)
	}
	var lpRule []interface{}
	for _, lpItem := range lp {
		lpRule = append(lpRule, lpItem)
	}

	logs, sub, err := _IntentManager.contract.FilterLogs(opts, "IntentCreated", intentIdRule, lpRule)
	if err != nil {
		return nil, err
	}
	return &IntentManagerIntentCreatedIterator{contract: _IntentManager.contract, event: "IntentCreated", logs: logs, sub: sub}, nil
}

// WatchIntentCreated is a free log subscription operation binding the contract event 0x6ec4b3f8.
//
// Solidity: event IntentCreated(uint256 indexed intentId, address indexed lp, uint128 totalLiquidity, uint128 maxChunk)
func (_IntentManager *IntentManagerFilterer) WatchIntentCreated(opts *bind.WatchOpts, sink chan<- *IntentManagerIntentCreated, intentId []*big.Int, lp []common.Address) (event.Subscription, error) {
	var intentIdRule []interface{}
	for _, intentIdItem := range intentId {
		intentIdRule = append(intentIdRule, intentIdItem)
	}
	var lpRule []interface{}
	for _, lpItem := range lp {
		lpRule = append(lpRule, lpItem)
	}

	logs, sub, err := _IntentManager.contract.WatchLogs(opts, "IntentCreated", intentIdRule, lpRule)
	if err != nil {
		return nil, err
	}
	return event.NewSubscription(func(quit <-chan struct{}) error {
		defer sub.Unsubscribe()
		for {
			select {
			case log := <-logs:
				// New log arrived, parse the event and forward to the user
				event := new(IntentManagerIntentCreated)
				if err := _IntentManager.contract.UnpackLog(event, "IntentCreated", log); err != nil {
					return err
				}
				event.Raw = log

				select {
				case sink <- event:
				case err := <-sub.Err():
					return err
				case <-quit:
					return nil
				}
			case err := <-sub.Err():
				return err
			case <-quit:
				return nil
			}
		}
	}), nil
}

// ParseIntentCreated is a log parse operation binding the contract event 0x6ec4b3f8.
//
// Solidity: event IntentCreated(uint256 indexed intentId, address indexed lp, uint128 totalLiquidity, uint128 maxChunk)
func (_IntentManager *IntentManagerFilterer) ParseIntentCreated(log types.Log) (*IntentManagerIntentCreated, error) {
	event := new(IntentManagerIntentCreated)
	if err := _IntentManager.contract.UnpackLog(event, "IntentCreated", log); err != nil {
		return nil, err
	}
	event.Raw = log
	return event, nil
}
