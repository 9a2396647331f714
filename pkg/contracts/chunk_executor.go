package contracts

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// ChunkExecutorABI is the ABI of the ChunkExecutor contract
const ChunkExecutorABI = `[
	{
		"inputs": [
			{ "internalType": "uint256", "name": "intentId", "type": "uint256" },
			{ "internalType": "uint128", "name": "chunkLiquidity", "type": "uint128" }
		],
		"name": "executeChunk",
		"outputs": [],
		"stateMutability": "nonpayable",
		"type": "function"
	}
]`

// ChunkExecutor is an auto generated Go binding around an Ethereum contract.
type ChunkExecutor struct {
	ChunkExecutorCaller     // Read-only binding to the contract
	ChunkExecutorTransactor // Write-only binding to the contract
	ChunkExecutorFilterer   // Log filterer for contract events
}

// ChunkExecutorCaller is an auto generated read-only Go binding around an Ethereum contract.
type ChunkExecutorCaller struct {
	contract *bind.BoundContract // Generic contract wrapper for the low level calls
}

// ChunkExecutorTransactor is an auto generated write-only Go binding around an Ethereum contract.
type ChunkExecutorTransactor struct {
	contract *bind.BoundContract // Generic contract wrapper for the low level calls
}

// ChunkExecutorFilterer is an auto generated log filtering Go binding around an Ethereum contract events.
type ChunkExecutorFilterer struct {
	contract *bind.BoundContract // Generic contract wrapper for the low level calls
}

// ChunkExecutorSession is an auto generated Go binding around an Ethereum contract,
// with pre-set call and transact options.
type ChunkExecutorSession struct {
	Contract     *ChunkExecutor    // Generic contract binding to set the session for
	CallOpts     bind.CallOpts     // Call options to use throughout this session
	TransactOpts bind.TransactOpts // Transaction auth options to use throughout this session
}

// ChunkExecutorTransactorSession is an auto generated write-only Go binding around an Ethereum contract,
// with pre-set transact options.
type ChunkExecutorTransactorSession struct {
	Contract     *ChunkExecutorTransactor // Generic contract transactor binding to set the session for
	TransactOpts bind.TransactOpts        // Transaction auth options to use throughout this session
}

// NewChunkExecutor creates a new instance of ChunkExecutor, bound to a specific deployed contract.
func NewChunkExecutor(address common.Address, backend bind.ContractBackend) (*ChunkExecutor, error) {
	contract, err := bindChunkExecutor(address, backend, backend, backend)
	if err != nil {
		return nil, err
	}
	return &ChunkExecutor{
		ChunkExecutorCaller:     ChunkExecutorCaller{contract: contract},
		ChunkExecutorTransactor: ChunkExecutorTransactor{contract: contract},
		ChunkExecutorFilterer:   ChunkExecutorFilterer{contract: contract},
	}, nil
}

// NewChunkExecutorTransactor creates a new write-only instance of ChunkExecutor, bound to a specific deployed contract.
func NewChunkExecutorTransactor(address common.Address, transactor bind.ContractTransactor) (*ChunkExecutorTransactor, error) {
	contract, err := bindChunkExecutor(address, nil, transactor, nil)
	if err != nil {
		return nil, err
	}
	return &ChunkExecutorTransactor{contract: contract}, nil
}

// bindChunkExecutor binds a generic wrapper to an already deployed contract.
func bindChunkExecutor(address common.Address, caller bind.ContractCaller, transactor bind.ContractTransactor, filterer bind.ContractFilterer) (*bind.BoundContract, error) {
	parsed, err := abi.JSON(strings.NewReader(ChunkExecutorABI))
	if err != nil {
		return nil, err
	}
	return bind.NewBoundContract(address, parsed, caller, transactor, filterer), nil
}

// ExecuteChunk is a paid mutator transaction binding the contract method 0x5b8e9959.
//
// Solidity: function executeChunk(uint256 intentId, uint128 chunkLiquidity) returns()
func (_ChunkExecutor *ChunkExecutorTransactor) ExecuteChunk(opts *bind.TransactOpts, intentId *big.Int, chunkLiquidity *big.Int) (*types.Transaction, error) {
	return _ChunkExecutor.contract.Transact(opts, "executeChunk", intentId, chunkLiquidity)
}

// ExecuteChunk is a paid mutator transaction binding the contract method 0x5b8e9959.
//
// Solidity: function executeChunk(uint256 intentId, uint128 chunkLiquidity) returns()
func (_ChunkExecutor *ChunkExecutorSession) ExecuteChunk(intentId *big.Int, chunkLiquidity *big.Int) (*types.Transaction, error) {
	return _ChunkExecutor.Contract.ExecuteChunk(&_ChunkExecutor.TransactOpts, intentId, chunkLiquidity)
}

// ExecuteChunk is a paid mutator transaction binding the contract method 0x5b8e9959.
//
// Solidity: function executeChunk(uint256 intentId, uint128 chunkLiquidity) returns()
func (_ChunkExecutor *ChunkExecutorTransactorSession) ExecuteChunk(intentId *big.Int, chunkLiquidity *big.Int) (*types.Transaction, error) {
	return _ChunkExecutor.Contract.ExecuteChunk(&_ChunkExecutor.TransactOpts, intentId, chunkLiquidity)
}
