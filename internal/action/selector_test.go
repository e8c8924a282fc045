//go:build unit

package action

import (
	"errors"
	"testing"

	"golang-actiontrigger/internal/mock"
	"golang-actiontrigger/internal/port"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func mockInterface(ctrl *gomock.Controller, id string) *mock.MockInterface {
	iface := mock.NewMockInterface(ctrl)
	iface.EXPECT().ID().Return(id).AnyTimes()
	return iface
}

func TestSelector_Select(t *testing.T) {
	t.Run("OpensMatchingEthernetInterface", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		registry := mock.NewMockFeatureRegistry(ctrl)
		lo := mockInterface(ctrl, "lo")
		eth1 := mockInterface(ctrl, "eth1")

		registry.EXPECT().Interfaces().Return([]port.Interface{lo, eth1}, nil)
		gomock.InOrder(
			eth1.EXPECT().Type().Return(port.InterfaceEthernet, nil),
			eth1.EXPECT().Open().Return(nil),
		)

		selector := NewSelector(registry)
		handle, err := selector.Select("eth1")
		require.NoError(t, err)
		assert.Equal(t, "eth1", handle.ID())

		eth1.EXPECT().Close().Return(nil).Times(1)
		selector.Close()
		selector.Close()
	})

	t.Run("EnumerationError", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		registry := mock.NewMockFeatureRegistry(ctrl)
		registry.EXPECT().Interfaces().Return(nil, errors.New("session closed"))

		_, err := NewSelector(registry).Select("eth1")
		assert.ErrorIs(t, err, ErrNoInterfacesFound)
	})

	t.Run("EmptyEnumeration", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		registry := mock.NewMockFeatureRegistry(ctrl)
		registry.EXPECT().Interfaces().Return([]port.Interface{}, nil)

		_, err := NewSelector(registry).Select("eth1")
		assert.ErrorIs(t, err, ErrNoInterfacesFound)
	})

	t.Run("InterfaceNotFoundLeavesNothingOpen", func(t *testing.T) {
		for _, id := range []string{"eth9", "ETH1", "eth", ""} {
			ctrl := gomock.NewController(t)
			registry := mock.NewMockFeatureRegistry(ctrl)
			// no Type, Open or Close expectations: any such call fails the test
			registry.EXPECT().Interfaces().Return([]port.Interface{
				mockInterface(ctrl, "lo"),
				mockInterface(ctrl, "eth1"),
			}, nil)

			selector := NewSelector(registry)
			_, err := selector.Select(id)
			assert.ErrorIs(t, err, ErrInterfaceNotFound, id)
			selector.Close()
		}
	})

	t.Run("FirstMatchWins", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		registry := mock.NewMockFeatureRegistry(ctrl)
		first := mockInterface(ctrl, "eth1")
		second := mockInterface(ctrl, "eth1")
		registry.EXPECT().Interfaces().Return([]port.Interface{first, second}, nil)
		first.EXPECT().Type().Return(port.InterfaceEthernet, nil)
		first.EXPECT().Open().Return(nil)

		handle, err := NewSelector(registry).Select("eth1")
		require.NoError(t, err)
		assert.Same(t, first, handle)
	})

	t.Run("UnsupportedInterfaceType", func(t *testing.T) {
		for _, ifaceType := range []port.InterfaceType{port.InterfaceLoopback, port.InterfaceWireless, port.InterfaceUnknown} {
			ctrl := gomock.NewController(t)
			registry := mock.NewMockFeatureRegistry(ctrl)
			iface := mockInterface(ctrl, "wlan0")
			registry.EXPECT().Interfaces().Return([]port.Interface{iface}, nil)
			iface.EXPECT().Type().Return(ifaceType, nil)

			_, err := NewSelector(registry).Select("wlan0")
			assert.ErrorIs(t, err, ErrUnsupportedInterfaceType, ifaceType.String())
		}
	})

	t.Run("TypeLookupError", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		registry := mock.NewMockFeatureRegistry(ctrl)
		iface := mockInterface(ctrl, "eth1")
		registry.EXPECT().Interfaces().Return([]port.Interface{iface}, nil)
		iface.EXPECT().Type().Return(port.InterfaceUnknown, errors.New("link vanished"))

		_, err := NewSelector(registry).Select("eth1")
		assert.ErrorIs(t, err, ErrUnsupportedInterfaceType)
	})

	t.Run("OpenFailure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		registry := mock.NewMockFeatureRegistry(ctrl)
		iface := mockInterface(ctrl, "eth1")
		registry.EXPECT().Interfaces().Return([]port.Interface{iface}, nil)
		iface.EXPECT().Type().Return(port.InterfaceEthernet, nil)
		iface.EXPECT().Open().Return(errors.New("operation not permitted"))

		selector := NewSelector(registry)
		_, err := selector.Select("eth1")
		assert.ErrorIs(t, err, ErrInterfaceOpenFailed)
		assert.Contains(t, err.Error(), "operation not permitted")
		selector.Close()
	})

	t.Run("SecondSelectRejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		registry := mock.NewMockFeatureRegistry(ctrl)
		iface := mockInterface(ctrl, "eth1")
		registry.EXPECT().Interfaces().Return([]port.Interface{iface}, nil)
		iface.EXPECT().Type().Return(port.InterfaceEthernet, nil)
		iface.EXPECT().Open().Return(nil)

		selector := NewSelector(registry)
		_, err := selector.Select("eth1")
		require.NoError(t, err)
		_, err = selector.Select("eth1")
		assert.ErrorIs(t, err, ErrInterfaceOpenFailed)
	})
}

func TestSelector_CloseFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	registry := mock.NewMockFeatureRegistry(ctrl)
	iface := mockInterface(ctrl, "eth1")
	registry.EXPECT().Interfaces().Return([]port.Interface{iface}, nil)
	iface.EXPECT().Type().Return(port.InterfaceEthernet, nil)
	iface.EXPECT().Open().Return(nil)
	iface.EXPECT().Close().Return(errors.New("device busy"))

	selector := NewSelector(registry)
	_, err := selector.Select("eth1")
	require.NoError(t, err)

	assert.NotPanics(t, selector.Close)
}
